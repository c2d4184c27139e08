// internal/app/features/donors/routes.go
package donors

import (
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/policy"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the donor routes. Signup, login, and self-lookup are
// open; the directory listing and edits are gated on the manage-donors
// action.
func (h *Handler) MountRoutes(r chi.Router, auth policy.Authorizer) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/lookup", h.Lookup)
	r.Get("/feed", h.Feed)

	r.Group(func(r chi.Router) {
		r.Use(policy.Require(auth, policy.ActionManageDonors))

		r.Get("/", h.List)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
