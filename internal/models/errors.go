package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across repositories and services. Handlers
// translate these into HTTP status codes; everything else maps to 500.
var (
	// ErrNotFound is returned when a booking, catalog item, user or
	// budget does not exist under the given id.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the caller is neither the owner
	// of the resource nor an admin.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidState is returned when an operation is not permitted in
	// the booking's current status, e.g. updating a completed booking.
	ErrInvalidState = errors.New("invalid booking state")

	// ErrAlreadyCancelled is returned when cancelling a booking that is
	// already cancelled. A second cancel must fail loudly so a refund is
	// never computed twice.
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrConflict is returned when a conditional write loses a race,
	// such as two concurrent cancels on the same booking version.
	ErrConflict = errors.New("conflicting concurrent update")
)

// ValidationError carries field-level detail for malformed request
// payloads. It is user-correctable and maps to a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (ve *ValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve.Fields))
	for field, msg := range ve.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (ve *ValidationError) Add(field, msg string) *ValidationError {
	if ve.Fields == nil {
		ve.Fields = map[string]string{}
	}
	ve.Fields[field] = msg
	return ve
}
