// internal/app/features/donations/donations.go
package donations

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/respond"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/timeouts"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createDonation is the JSON body for POST /donations: the fulfillment
// bridge from an accepted response to a donation record.
type createDonation struct {
	Email     string `json:"email"`
	Date      string `json:"date"`
	BloodBank string `json:"bloodBank"`
	Status    string `json:"status"`
}

// Create handles POST /donations.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body createDonation
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	d, err := h.Donations.CreateFromResponse(ctx, body.Email, body.Date, body.BloodBank, body.Status)
	if err != nil {
		respond.Err(w, h.Log, "create donation", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "donation": d})
}

// List handles GET /donations.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Donations.List(ctx)
	if err != nil {
		respond.Err(w, h.Log, "list donations", err)
		return
	}
	if list == nil {
		list = []models.Donation{}
	}
	respond.OK(w, map[string]any{"success": true, "donations": list})
}

// ListByEmail handles GET /donations/{email}.
func (h *Handler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Donations.ListByEmail(ctx, email)
	if err != nil {
		respond.Err(w, h.Log, "list donations by email", err)
		return
	}
	if list == nil {
		list = []models.Donation{}
	}
	respond.OK(w, map[string]any{"success": true, "donations": list})
}

// UpdateStatus handles PATCH /donations/{id}.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusNotFound, "Not found")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	d, err := h.Donations.UpdateStatus(ctx, id, body.Status)
	if err != nil {
		respond.Err(w, h.Log, "update donation", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "donation": d})
}

// Delete handles DELETE /donations/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusNotFound, "Not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Donations.Delete(ctx, id); err != nil {
		respond.Err(w, h.Log, "delete donation", err)
		return
	}
	respond.OK(w, map[string]any{"success": true})
}
