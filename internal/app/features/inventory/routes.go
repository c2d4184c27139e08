// internal/app/features/inventory/routes.go
package inventory

import (
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/policy"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the inventory routes, all gated on the
// manage-inventory action.
func (h *Handler) MountRoutes(r chi.Router, auth policy.Authorizer) {
	r.Group(func(r chi.Router) {
		r.Use(policy.Require(auth, policy.ActionManageInventory))

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
