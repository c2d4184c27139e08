// internal/app/features/requests/requests.go
package requests

import (
	"context"
	"encoding/json"
	"net/http"

	requeststore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/requests"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/paging"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/respond"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/sanitize"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/timeouts"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createRequest is the JSON body for POST /requests.
type createRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Blood    string `json:"blood"`
	Units    int    `json:"units"`
	NeededBy string `json:"neededBy"`
	Hospital string `json:"hospital"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// Create handles POST /requests.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	req, err := h.Requests.Create(ctx, models.Request{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Blood:    body.Blood,
		Units:    body.Units,
		NeededBy: body.NeededBy,
		Hospital: body.Hospital,
		Location: body.Location,
		Notes:    sanitize.Text(body.Notes),
	})
	if err != nil {
		respond.Err(w, h.Log, "create request", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "request": req})
}

// List handles GET /requests?status=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Requests.List(ctx, r.URL.Query().Get("status"))
	if err != nil {
		respond.Err(w, h.Log, "list requests", err)
		return
	}
	if list == nil {
		list = []models.Request{}
	}
	respond.OK(w, map[string]any{"success": true, "requests": list})
}

// History handles GET /requests/history?skip=&limit=.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	win := paging.ParseWindow(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Requests.History(ctx, win.Skip, win.Limit)
	if err != nil {
		respond.Err(w, h.Log, "request history", err)
		return
	}
	if list == nil {
		list = []models.Request{}
	}
	respond.OK(w, map[string]any{"success": true, "requests": list})
}

// updateRequest is the JSON body for PATCH /requests/{id}. Absent fields
// are left untouched.
type updateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Blood    string `json:"blood"`
	Units    *int   `json:"units"`
	NeededBy string `json:"neededBy"`
	Hospital string `json:"hospital"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
	Status   string `json:"status"`
}

// Update handles PATCH /requests/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}

	var body updateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	req, err := h.Requests.Update(ctx, id, requeststore.Patch{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Blood:    body.Blood,
		Units:    body.Units,
		NeededBy: body.NeededBy,
		Hospital: body.Hospital,
		Location: body.Location,
		Notes:    sanitize.Text(body.Notes),
		Status:   body.Status,
	})
	if err != nil {
		respond.Err(w, h.Log, "update request", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "request": req})
}

// Delete handles DELETE /requests/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Requests.Delete(ctx, id); err != nil {
		respond.Err(w, h.Log, "delete request", err)
		return
	}
	respond.OK(w, map[string]any{"success": true})
}

// requestID parses the {id} route parameter, answering 404 for a malformed
// id so unknown and malformed ids look the same to the client.
func requestID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusNotFound, "Not found")
		return primitive.ObjectID{}, false
	}
	return id, true
}
