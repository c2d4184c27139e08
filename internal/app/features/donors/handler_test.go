package donors_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/features/donors"
	alertstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/alerts"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/policy"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"github.com/lekithkishore/blood-bank-management-system/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newRouter(db *mongo.Database) http.Handler {
	h := donors.NewHandler(db, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/donors", func(r chi.Router) {
		h.MountRoutes(r, policy.AllowAll{})
	})
	return r
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const signupPriya = `{"name":"Priya","email":"priya@x.com","password":"pw","age":29,"gender":"F","blood":"O+"}`

func TestSignupAndLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(db)

	rec := do(t, router, "POST", "/donors/signup", signupPriya)
	if rec.Code != http.StatusOK {
		t.Fatalf("signup: status %d, body %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), `"pw"`) {
		t.Error("password leaked into the signup response")
	}

	rec = do(t, router, "POST", "/donors/login", `{"email":"priya@x.com","password":"pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", rec.Code, rec.Body.String())
	}
	var out struct {
		User models.Donor `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if out.User.Blood != "O+" {
		t.Errorf("blood: got %q, want O+", out.User.Blood)
	}

	rec = do(t, router, "POST", "/donors/login", `{"email":"priya@x.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got %d, want 401", rec.Code)
	}
	rec = do(t, router, "POST", "/donors/login", `{"email":"nobody@x.com","password":"pw"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown email: got %d, want 401", rec.Code)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(db)

	if rec := do(t, router, "POST", "/donors/signup", signupPriya); rec.Code != http.StatusOK {
		t.Fatalf("signup: status %d", rec.Code)
	}
	if rec := do(t, router, "POST", "/donors/signup", signupPriya); rec.Code != http.StatusConflict {
		t.Errorf("duplicate signup: got %d, want 409", rec.Code)
	}
}

func TestLookup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(db)

	if rec := do(t, router, "POST", "/donors/signup", signupPriya); rec.Code != http.StatusOK {
		t.Fatalf("signup: status %d", rec.Code)
	}

	// Case-insensitive on email.
	rec := do(t, router, "POST", "/donors/lookup", `{"email":"PRIYA@x.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("lookup: status %d, body %s", rec.Code, rec.Body.String())
	}

	if rec := do(t, router, "POST", "/donors/lookup", `{"email":"nobody@x.com"}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown email: got %d, want 404", rec.Code)
	}
	if rec := do(t, router, "POST", "/donors/lookup", `{}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing email: got %d, want 400", rec.Code)
	}
}

func TestFeed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	router := newRouter(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if rec := do(t, router, "POST", "/donors/signup", signupPriya); rec.Code != http.StatusOK {
		t.Fatalf("signup: status %d", rec.Code)
	}

	scoped := fix.CreateAlert(ctx, "Need O+ urgently", "O+")
	fix.CreateAlert(ctx, "Blood drive Saturday", "")
	fix.CreateAlert(ctx, "Need AB- urgently", "AB-")

	respondToAlert(t, db, scoped.ID.Hex(), "priya@x.com")

	rec := do(t, router, "GET", "/donors/feed?email=priya@x.com", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("feed: status %d, body %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Alerts []struct {
			Message   string `json:"message"`
			Responded bool   `json:"responded"`
		} `json:"alerts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(out.Alerts) != 2 {
		t.Fatalf("expected 2 visible alerts for an O+ donor, got %d", len(out.Alerts))
	}
	for _, item := range out.Alerts {
		want := item.Message == "Need O+ urgently"
		if item.Responded != want {
			t.Errorf("alert %q: responded=%v, want %v", item.Message, item.Responded, want)
		}
	}

	if rec := do(t, router, "GET", "/donors/feed?email=nobody@x.com", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown donor: got %d, want 404", rec.Code)
	}
	if rec := do(t, router, "GET", "/donors/feed", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("missing email: got %d, want 400", rec.Code)
	}
}

func respondToAlert(t *testing.T, db *mongo.Database, alertID, email string) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	id, err := primitive.ObjectIDFromHex(alertID)
	if err != nil {
		t.Fatalf("bad alert id: %v", err)
	}
	if _, err := alertstore.New(db).Respond(ctx, id, email, models.ResponseAccepted, "2 hours"); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
}

func TestAdminDirectory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(db)

	rec := do(t, router, "POST", "/donors/signup", signupPriya)
	if rec.Code != http.StatusOK {
		t.Fatalf("signup: status %d", rec.Code)
	}
	var created struct {
		User models.Donor `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad response: %v", err)
	}

	rec = do(t, router, "GET", "/donors", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	var listed struct {
		Users []models.Donor `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(listed.Users) != 1 {
		t.Fatalf("expected 1 donor, got %d", len(listed.Users))
	}

	rec = do(t, router, "PATCH", "/donors/"+created.User.ID.Hex(), `{"blood":"AB-"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		User models.Donor `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if updated.User.Blood != "AB-" {
		t.Errorf("blood: got %q, want AB-", updated.User.Blood)
	}

	if rec := do(t, router, "DELETE", "/donors/"+created.User.ID.Hex(), ""); rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	if rec := do(t, router, "POST", "/donors/lookup", `{"email":"priya@x.com"}`); rec.Code != http.StatusNotFound {
		t.Errorf("lookup after delete: got %d, want 404", rec.Code)
	}
}
