// internal/app/features/inventory/inventory.go
package inventory

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

// entryBody is the JSON body for creating or replacing an inventory entry.
type entryBody struct {
	Hospital   string `json:"hospital"`
	BloodGroup string `json:"bloodGroup"`
	Units      int    `json:"units"`
}

// Create handles POST /inventory.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body entryBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	e, err := h.Inventory.Create(ctx, models.InventoryEntry{
		Hospital:   body.Hospital,
		BloodGroup: body.BloodGroup,
		Units:      body.Units,
	})
	if err != nil {
		respond.Err(w, h.Log, "create inventory entry", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "entry": e})
}

// List handles GET /inventory.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Inventory.List(ctx)
	if err != nil {
		respond.Err(w, h.Log, "list inventory", err)
		return
	}
	if list == nil {
		list = []models.InventoryEntry{}
	}
	respond.OK(w, map[string]any{"success": true, "inventory": list})
}

// Update handles PUT /inventory/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusNotFound, "Not found")
		return
	}

	var body entryBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	e, err := h.Inventory.Update(ctx, id, models.InventoryEntry{
		Hospital:   body.Hospital,
		BloodGroup: body.BloodGroup,
		Units:      body.Units,
	})
	if err != nil {
		respond.Err(w, h.Log, "update inventory entry", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "entry": e})
}

// Delete handles DELETE /inventory/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusNotFound, "Not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Inventory.Delete(ctx, id); err != nil {
		respond.Err(w, h.Log, "delete inventory entry", err)
		return
	}
	respond.OK(w, map[string]any{"success": true})
}
