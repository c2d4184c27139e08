// internal/app/features/requests/accept.go
package requests

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/store/queries/unbroadcast"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/respond"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/timeouts"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"go.uber.org/zap"
)

// Accept handles PATCH /requests/{id}/accept. It stamps the request and
// then broadcasts an alert scoped to the request's blood group. The two
// writes are not atomic; if the broadcast fails the request stays Accepted
// and the reconcile sweep picks it up later, so the failure is reported as
// success with a broadcast flag.
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	req, err := h.Requests.Accept(ctx, id)
	if err != nil {
		respond.Err(w, h.Log, "accept request", err)
		return
	}

	if err := h.broadcast(ctx, req); err != nil {
		h.Log.Error("broadcast after accept failed; reconcile will retry",
			zap.Error(err),
			zap.String("request_id", req.ID.Hex()))
		respond.OK(w, map[string]any{"success": true, "request": req, "broadcast": false})
		return
	}
	respond.OK(w, map[string]any{"success": true, "request": req, "broadcast": true})
}

// Reject handles PATCH /requests/{id}/reject.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	req, err := h.Requests.Reject(ctx, id)
	if err != nil {
		respond.Err(w, h.Log, "reject request", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "request": req})
}

// Reconcile handles POST /requests/reconcile: broadcast alerts for every
// accepted request that has none.
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	n, err := Sweep(ctx, h)
	if err != nil {
		respond.Err(w, h.Log, "reconcile requests", err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "broadcast": n})
}

// Sweep finds accepted requests with no alert and broadcasts one for
// each. It is called from the HTTP handler and from startup. The count of
// alerts sent is returned; the sweep stops at the first failure so a down
// database does not produce a partial storm of retries.
func Sweep(ctx context.Context, h *Handler) (int, error) {
	missing, err := unbroadcast.Find(ctx, h.DB)
	if err != nil {
		return 0, err
	}
	for i, req := range missing {
		if err := h.broadcast(ctx, req); err != nil {
			return i, err
		}
		h.Log.Info("reconciled missing broadcast",
			zap.String("request_id", req.ID.Hex()),
			zap.String("group", req.Blood))
	}
	return len(missing), nil
}

func (h *Handler) broadcast(ctx context.Context, req models.Request) error {
	msg := fmt.Sprintf("%d unit(s) of %s needed at %s, %s by %s. Contact %s.",
		req.Units, req.Blood, req.Hospital, req.Location, req.NeededBy, req.Email)
	_, err := h.Alerts.Create(ctx, msg, req.Blood, &req.ID)
	return err
}
