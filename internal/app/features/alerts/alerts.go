// internal/app/features/alerts/alerts.go
package alerts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/respond"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/sanitize"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/timeouts"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/matching"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createAlert is the JSON body for POST /alerts. Group is optional; empty
// means every donor sees it.
type createAlert struct {
	Message string `json:"message"`
	Group   string `json:"group"`
}

// Create handles POST /alerts: a manual broadcast not tied to a request.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body createAlert
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	alert, err := h.Alerts.Create(ctx, sanitize.Text(body.Message), body.Group, nil)
	if err != nil {
		respond.Err(w, h.Log, "create alert", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "alert": alert})
}

// List handles GET /alerts?group=. With a group it returns the alerts a
// donor of that group should see; without one it returns everything.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Alerts.ListFor(ctx, r.URL.Query().Get("group"))
	if err != nil {
		respond.Err(w, h.Log, "list alerts", err)
		return
	}
	if list == nil {
		list = []models.Alert{}
	}
	respond.OK(w, map[string]any{"success": true, "alerts": list})
}

// Get handles GET /alerts/{id}. Alongside the raw log it returns the
// collapsed view admins act on: each donor's newest reply.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := alertID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	alert, err := h.Alerts.GetByID(ctx, id)
	if err != nil {
		respond.Err(w, h.Log, "get alert", err)
		return
	}
	respond.OK(w, map[string]any{
		"success":         true,
		"alert":           alert,
		"latestResponses": matching.LatestResponses(alert),
	})
}

// respondBody is the JSON body for POST /alerts/{id}/respond.
type respondBody struct {
	Email  string `json:"email"`
	Status string `json:"status"`
	ETA    string `json:"eta"`
}

// Respond handles POST /alerts/{id}/respond: a donor accepting or
// declining a broadcast. Repeat submissions append; nothing is deduped
// here.
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	id, ok := alertID(w, r)
	if !ok {
		return
	}

	var body respondBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	alert, err := h.Alerts.Respond(ctx, id, body.Email, body.Status, sanitize.Text(body.ETA))
	if err != nil {
		respond.Err(w, h.Log, "respond to alert", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "alert": alert})
}

// Delete handles DELETE /alerts/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := alertID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Alerts.Delete(ctx, id); err != nil {
		respond.Err(w, h.Log, "delete alert", err)
		return
	}
	respond.OK(w, map[string]any{"success": true})
}

// deleteResponseBody is the JSON body for DELETE /alerts/{id}/responses.
// Without respondedAt every response from that email is removed; with it
// only the exact entry.
type deleteResponseBody struct {
	Email       string `json:"email"`
	RespondedAt string `json:"respondedAt"`
}

// DeleteResponse handles DELETE /alerts/{id}/responses.
func (h *Handler) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	id, ok := alertID(w, r)
	if !ok {
		return
	}

	var body deleteResponseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// An unparsable timestamp is ignored and the match falls back to
	// email alone.
	var respondedAt time.Time
	if body.RespondedAt != "" {
		if t, err := time.Parse(time.RFC3339, body.RespondedAt); err == nil {
			respondedAt = t
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Alerts.DeleteResponse(ctx, id, body.Email, respondedAt); err != nil {
		respond.Err(w, h.Log, "delete alert response", err)
		return
	}
	respond.OK(w, map[string]any{"success": true})
}

func alertID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusNotFound, "Not found")
		return primitive.ObjectID{}, false
	}
	return id, true
}
