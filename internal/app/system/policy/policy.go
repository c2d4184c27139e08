// internal/app/system/policy/policy.go

// Package policy is the capability check in front of every admin-facing
// operation. Handlers never check roles themselves; the router wraps admin
// routes with Require and the injected Authorizer decides.
//
// The shipped Authorizer allows everything, which matches the system this
// replaces, but the check point exists so a real policy can be dropped in
// without touching handlers.
package policy

import (
	"net/http"
)

// ActorHeader names the request header the middleware reads the acting
// admin's identity from.
const ActorHeader = "X-Admin-Email"

// Admin actions checked at the route boundary.
const (
	ActionManageRequests  = "requests.manage"
	ActionManageAlerts    = "alerts.manage"
	ActionManageDonations = "donations.manage"
	ActionManageDonors    = "donors.manage"
	ActionManageInventory = "inventory.manage"
)

// Authorizer decides whether an actor may perform an action.
type Authorizer interface {
	Authorize(actor, action string) bool
}

// AllowAll permits every actor to perform every action.
type AllowAll struct{}

// Authorize always reports true.
func (AllowAll) Authorize(actor, action string) bool { return true }

// Require wraps a handler group with an authorization check for the given
// action. The actor is taken from the ActorHeader; a missing header means
// an anonymous actor, which the Authorizer is free to reject.
func Require(a Authorizer, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := r.Header.Get(ActorHeader)
			if !a.Authorize(actor, action) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
