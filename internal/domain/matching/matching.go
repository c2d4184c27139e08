// internal/domain/matching/matching.go

// Package matching holds the read-side policy that decides which alerts a
// donor sees and whether they already replied. It is pure: no storage, no
// clock, just predicates over loaded documents.
package matching

import (
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
)

// Matches reports whether an alert applies to a donor with the given blood
// group. An unscoped alert (empty group) applies to everyone.
func Matches(alert models.Alert, donorGroup string) bool {
	return alert.Group == "" || alert.Group == donorGroup
}

// HasResponded reports whether the donor has any response on the alert,
// accepted or declined. It is an existence check only; it does not stop a
// donor from responding again.
func HasResponded(alert models.Alert, email string) bool {
	for _, resp := range alert.Responses {
		if resp.Email == email {
			return true
		}
	}
	return false
}

// LatestResponses collapses the alert's append-only response log to the
// newest entry per donor, preserving the order in which each donor first
// appeared. The log itself keeps every entry; this is the display view.
func LatestResponses(alert models.Alert) []models.Response {
	idx := make(map[string]int, len(alert.Responses))
	out := make([]models.Response, 0, len(alert.Responses))
	for _, resp := range alert.Responses {
		if i, ok := idx[resp.Email]; ok {
			if !resp.RespondedAt.Before(out[i].RespondedAt) {
				out[i] = resp
			}
			continue
		}
		idx[resp.Email] = len(out)
		out = append(out, resp)
	}
	return out
}
