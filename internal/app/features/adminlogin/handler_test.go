package adminlogin_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/features/adminlogin"
	adminstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/admins"
	"github.com/lekithkishore/blood-bank-management-system/internal/testutil"
	"go.uber.org/zap"
)

func TestLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := adminstore.New(db).EnsureDefault(ctx, "admin@bloodlink.org", "s3cret", zap.NewNop()); err != nil {
		t.Fatalf("EnsureDefault failed: %v", err)
	}

	h := adminlogin.NewHandler(db, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/admin", func(r chi.Router) {
		h.MountRoutes(r)
	})

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	if rec := do(`{"email":"admin@bloodlink.org","password":"s3cret"}`); rec.Code != http.StatusOK {
		t.Errorf("valid credentials: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if rec := do(`{"email":"admin@bloodlink.org","password":"wrong"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got %d, want 401", rec.Code)
	}
	if rec := do(`{"email":"nobody@bloodlink.org","password":"s3cret"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown admin: got %d, want 401", rec.Code)
	}
	if rec := do(`{broken`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: got %d, want 400", rec.Code)
	}
}
