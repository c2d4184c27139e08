// internal/app/features/requests/routes.go
package requests

import (
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/policy"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts all request routes on the given router. Every route
// is gated on the manage-requests action.
func (h *Handler) MountRoutes(r chi.Router, auth policy.Authorizer) {
	r.Group(func(r chi.Router) {
		r.Use(policy.Require(auth, policy.ActionManageRequests))

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/history", h.History)
		r.Post("/reconcile", h.Reconcile)
		r.Patch("/{id}", h.Update)
		r.Patch("/{id}/accept", h.Accept)
		r.Patch("/{id}/reject", h.Reject)
		r.Delete("/{id}", h.Delete)
	})
}
