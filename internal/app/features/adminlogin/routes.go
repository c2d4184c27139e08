// internal/app/features/adminlogin/routes.go
package adminlogin

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the admin login route. Ungated: this is the door.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.Login)
}
