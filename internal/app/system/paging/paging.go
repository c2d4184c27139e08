// internal/app/system/paging/paging.go

// Package paging clamps skip/limit query parameters for offset-paginated
// list endpoints. Request history pages newest-first, seven at a time.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultPageSize is the number of rows a history page shows when the
// caller does not ask for a limit.
const DefaultPageSize = 7

// MaxPageSize caps the limit a caller may request.
const MaxPageSize = 100

// Window is a clamped skip/limit pair ready to hand to a Mongo Find.
type Window struct {
	Skip  int64
	Limit int64
}

// Clamp normalizes raw skip/limit values: skip is floored at 0, limit is
// clamped to [1, MaxPageSize], and a non-positive limit falls back to
// DefaultPageSize.
func Clamp(skip, limit int) Window {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Window{Skip: int64(skip), Limit: int64(limit)}
}

// ParseWindow reads "skip" and "limit" from the request's query string and
// clamps them. Absent or malformed values fall back to 0 and
// DefaultPageSize.
func ParseWindow(r *http.Request) Window {
	skip, _ := strconv.Atoi(query.Get(r, "skip"))
	limit, err := strconv.Atoi(query.Get(r, "limit"))
	if err != nil {
		limit = DefaultPageSize
	}
	return Clamp(skip, limit)
}
