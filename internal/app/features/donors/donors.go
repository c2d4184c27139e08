// internal/app/features/donors/donors.go
package donors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	donorstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/donors"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/respond"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/timeouts"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// signupBody is the JSON body for POST /donors/signup.
type signupBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Blood    string `json:"blood"`
}

// Signup handles POST /donors/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	donor, err := h.Donors.Create(ctx, models.Donor{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Age:      body.Age,
		Gender:   body.Gender,
		Blood:    body.Blood,
	})
	if errors.Is(err, donorstore.ErrDuplicateEmail) {
		respond.Fail(w, http.StatusConflict, "A donor with this email already exists")
		return
	}
	if err != nil {
		respond.Err(w, h.Log, "donor signup", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "user": donor})
}

// loginBody is the JSON body for POST /donors/login and /donors/lookup.
type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /donors/login. It is a record check only: the
// profile is returned on a match and no session is issued.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	donor, err := h.Donors.GetByEmail(ctx, body.Email)
	if errors.Is(err, faults.ErrNotFound) || (err == nil && donor.Password != body.Password) {
		respond.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		respond.Err(w, h.Log, "donor login", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "user": donor})
}

// Lookup handles POST /donors/lookup: resolve a donor profile by email,
// used by the donor dashboard and by alert screens to pick a donor's
// group.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if body.Email == "" {
		respond.Fail(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	donor, err := h.Donors.GetByEmail(ctx, body.Email)
	if err != nil {
		respond.Err(w, h.Log, "donor lookup", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "user": donor})
}

// List handles GET /donors.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Donors.List(ctx)
	if err != nil {
		respond.Err(w, h.Log, "list donors", err)
		return
	}
	if list == nil {
		list = []models.Donor{}
	}
	respond.OK(w, map[string]any{"success": true, "users": list})
}

// updateBody is the JSON body for PATCH /donors/{id}. Only name, blood,
// gender, and age can be changed.
type updateBody struct {
	Name   string `json:"name"`
	Blood  string `json:"blood"`
	Gender string `json:"gender"`
	Age    *int   `json:"age"`
}

// Update handles PATCH /donors/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := donorID(w, r)
	if !ok {
		return
	}

	var body updateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	donor, err := h.Donors.Update(ctx, id, donorstore.Patch{
		Name:   body.Name,
		Blood:  body.Blood,
		Gender: body.Gender,
		Age:    body.Age,
	})
	if err != nil {
		respond.Err(w, h.Log, "update donor", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "user": donor})
}

// Delete handles DELETE /donors/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := donorID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Donors.Delete(ctx, id); err != nil {
		respond.Err(w, h.Log, "delete donor", err)
		return
	}
	respond.OK(w, map[string]any{"success": true})
}

func donorID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusNotFound, "Not found")
		return primitive.ObjectID{}, false
	}
	return id, true
}
