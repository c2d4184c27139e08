package requests_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/features/requests"
	alertstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/alerts"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/policy"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"github.com/lekithkishore/blood-bank-management-system/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type denyAll struct{}

func (denyAll) Authorize(actor, action string) bool { return false }

func newRouter(db *mongo.Database, auth policy.Authorizer) (*requests.Handler, http.Handler) {
	h := requests.NewHandler(db, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/requests", func(r chi.Router) {
		h.MountRoutes(r, auth)
	})
	return h, r
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, router := newRouter(db, policy.AllowAll{})

	rec := do(t, router, "POST", "/requests", `{
		"name":"Ward 3","email":"ward3@hospital.org","blood":"O+","units":2,
		"neededBy":"2025-04-01","hospital":"City General","location":"Springfield"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: status %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Success bool           `json:"success"`
		Request models.Request `json:"request"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create response: %v", err)
	}
	if !created.Success || created.Request.Status != models.RequestPending {
		t.Errorf("create response: %+v", created)
	}

	rec = do(t, router, "GET", "/requests?status=Pending", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	var listed struct {
		Requests []models.Request `json:"requests"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("bad list response: %v", err)
	}
	if len(listed.Requests) != 1 {
		t.Errorf("expected 1 pending request, got %d", len(listed.Requests))
	}
}

func TestCreateValidationLandsAs400(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, router := newRouter(db, policy.AllowAll{})

	rec := do(t, router, "POST", "/requests", `{"name":"Ward 3"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}

	rec = do(t, router, "POST", "/requests", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: got %d, want 400", rec.Code)
	}
}

func TestAcceptBroadcastsAlert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	_, router := newRouter(db, policy.AllowAll{})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := fix.CreateRequest(ctx, "O+", 2)

	rec := do(t, router, "PATCH", "/requests/"+req.ID.Hex()+"/accept", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("accept: status %d, body %s", rec.Code, rec.Body.String())
	}
	var accepted struct {
		Request   models.Request `json:"request"`
		Broadcast bool           `json:"broadcast"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &accepted); err != nil {
		t.Fatalf("bad accept response: %v", err)
	}
	if accepted.Request.Status != models.RequestAccepted {
		t.Errorf("status: got %q, want Accepted", accepted.Request.Status)
	}
	if accepted.Request.AcceptedAt == nil || accepted.Request.RejectedAt != nil {
		t.Errorf("timestamps wrong: %+v", accepted.Request)
	}
	if !accepted.Broadcast {
		t.Error("expected broadcast=true")
	}

	// The alert must exist, scoped to the request's group and linked back.
	alerts, err := alertstore.New(db).FindBySourceRequest(ctx, req.ID)
	if err != nil {
		t.Fatalf("FindBySourceRequest failed: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 broadcast alert, got %d", len(alerts))
	}
	if alerts[0].Group != "O+" {
		t.Errorf("alert group: got %q, want O+", alerts[0].Group)
	}
}

func TestReconcileCoversAcceptedWithoutAlert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h, router := newRouter(db, policy.AllowAll{})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// An accepted request with its broadcast missing, as after a crash
	// between the two writes.
	req := fix.CreateRequest(ctx, "A-", 1)
	if _, err := h.Requests.Accept(ctx, req.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	rec := do(t, router, "POST", "/requests/reconcile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("reconcile: status %d, body %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Broadcast int `json:"broadcast"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad reconcile response: %v", err)
	}
	if out.Broadcast != 1 {
		t.Errorf("expected 1 reconciled broadcast, got %d", out.Broadcast)
	}

	// A second sweep finds nothing.
	rec = do(t, router, "POST", "/requests/reconcile", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad reconcile response: %v", err)
	}
	if out.Broadcast != 0 {
		t.Errorf("second sweep: expected 0, got %d", out.Broadcast)
	}
}

func TestHistoryPagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	_, router := newRouter(db, policy.AllowAll{})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 10; i++ {
		fix.CreateRequest(ctx, "O+", i+1)
	}

	var page struct {
		Requests []models.Request `json:"requests"`
	}

	// Default window is the first seven, newest first.
	rec := do(t, router, "GET", "/requests/history", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad history response: %v", err)
	}
	if len(page.Requests) != 7 {
		t.Fatalf("first page: got %d, want 7", len(page.Requests))
	}

	rec = do(t, router, "GET", "/requests/history?skip=7&limit=7", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad history response: %v", err)
	}
	if len(page.Requests) != 3 {
		t.Errorf("second page: got %d, want 3", len(page.Requests))
	}
}

func TestNotFoundAndBadID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, router := newRouter(db, policy.AllowAll{})

	rec := do(t, router, "PATCH", "/requests/aaaaaaaaaaaaaaaaaaaaaaaa/accept", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", rec.Code)
	}
	rec = do(t, router, "PATCH", "/requests/not-an-id/accept", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("malformed id: got %d, want 404", rec.Code)
	}
}

func TestRoutesAreGated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, router := newRouter(db, denyAll{})

	rec := do(t, router, "GET", "/requests", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 from a denying authorizer, got %d", rec.Code)
	}
}
