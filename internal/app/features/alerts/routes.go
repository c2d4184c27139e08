// internal/app/features/alerts/routes.go
package alerts

import (
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/policy"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the alert routes. Listing and responding are open to
// donors; creating and deleting are gated on the manage-alerts action.
func (h *Handler) MountRoutes(r chi.Router, auth policy.Authorizer) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/respond", h.Respond)

	r.Group(func(r chi.Router) {
		r.Use(policy.Require(auth, policy.ActionManageAlerts))

		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
		r.Delete("/{id}/responses", h.DeleteResponse)
	})
}
