// internal/app/system/respond/respond.go

// Package respond writes the JSON envelope every handler speaks:
// {"success": true, ...} on the happy path, {"success": false, "message":
// "..."} on failure, with the status code derived from the error kind.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"go.uber.org/zap"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with 200.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Fail writes a failure envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{"success": false, "message": message})
}

// Err maps a store error to a response: validation errors become 400 with
// the error text, ErrNotFound becomes 404, anything else is logged under
// op and reported as a generic 500. Internal detail never reaches the
// client.
func Err(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	switch {
	case faults.IsValidation(err):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, faults.ErrNotFound):
		Fail(w, http.StatusNotFound, "Not found")
	default:
		logger.Error(op, zap.Error(err))
		Fail(w, http.StatusInternalServerError, "Server error")
	}
}
