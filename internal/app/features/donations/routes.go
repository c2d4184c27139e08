// internal/app/features/donations/routes.go
package donations

import (
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/policy"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the donation routes. A donor can read their own
// history by email; everything else is gated on the manage-donations
// action.
func (h *Handler) MountRoutes(r chi.Router, auth policy.Authorizer) {
	r.Get("/{email}", h.ListByEmail)

	r.Group(func(r chi.Router) {
		r.Use(policy.Require(auth, policy.ActionManageDonations))

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Patch("/{id}", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})
}
