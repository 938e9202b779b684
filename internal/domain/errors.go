package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidOrExpiredCode is an expected, user-facing outcome of a redemption:
	// no live code, wrong code, expired, consumed, or attempt limit reached.
	ErrInvalidOrExpiredCode = errors.New("verification code is invalid or expired")

	// ErrStorage marks a failure of the backing store (unavailable, constraint violation).
	ErrStorage = errors.New("storage failure")

	// ErrTransport marks an email transport that rejected a message or timed out.
	ErrTransport = errors.New("transport failure")

	// ErrUserNotFound is returned when an on-demand action targets an unknown account.
	ErrUserNotFound = errors.New("user not found")

	// ErrPreferenceNotConfigured is returned when a user cannot be notified because
	// delivery is disabled or no address is on file.
	ErrPreferenceNotConfigured = errors.New("notification preference not configured")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
