// internal/app/system/faults/faults.go

// Package faults defines the error taxonomy shared by stores and handlers:
// not-found, field-level validation failures, and storage failures. Stores
// return these; handlers map them to 404, 400, and 500.
package faults

import (
	"errors"
	"fmt"
)

// ErrNotFound means an id did not resolve to a live document. It is never
// fatal; callers surface it as a no-op failure.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or invalid required field. It is
// user-correctable and carries enough detail to say which field failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Missing builds a ValidationError for a required field that was absent.
func Missing(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a persistence-layer failure. The original operation is
// named so logs can say what was being attempted.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the named operation. Returns nil
// if err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
