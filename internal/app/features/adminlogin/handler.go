// internal/app/features/adminlogin/handler.go
package adminlogin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	adminstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/admins"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/respond"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler verifies admin credentials against the seeded admin records.
type Handler struct {
	Admins *adminstore.Store
	Log    *zap.Logger
}

// NewHandler constructs an admin login Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Admins: adminstore.New(db),
		Log:    logger,
	}
}

// loginBody is the JSON body for POST /admin/login.
type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /admin/login. A credential check only; no session or
// token is issued.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Admins.Verify(ctx, body.Email, body.Password); err != nil {
		if errors.Is(err, adminstore.ErrBadCredentials) {
			respond.Fail(w, http.StatusUnauthorized, "Invalid admin credentials")
			return
		}
		respond.Err(w, h.Log, "admin login", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "message": "Admin login successful"})
}
