// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from donor- and admin-supplied free text.
// Alert messages, request notes, and response ETAs are stored and later
// shown back to other users, so none of them may carry HTML.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes every HTML element and attribute from s and trims the
// surrounding whitespace. The text content of removed tags is kept.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strict.Sanitize(s))
}
