package domain

import (
	"errors"
	"fmt"
)

// Common domain errors. Handlers map these to HTTP status codes at the
// boundary; services never return raw storage errors to callers.
var (
	// ErrUnauthorized is returned when no authenticated session is present.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the session's role is insufficient.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState is returned on an illegal transfer status transition.
	ErrInvalidState = errors.New("invalid state transition")
	// ErrValidation is the root of all input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrUsernameTaken is returned when creating a user with a username
	// that already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserReferenced is returned when deleting a user that is still
	// referenced by historical transfers.
	ErrUserReferenced = errors.New("user is referenced by transfers")
	// ErrInvalidCredentials is returned for any login failure, deliberately
	// uniform across unknown user, wrong password and inactive account.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError names the offending field so the caller can surface a
// precise message. It unwraps to ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a field-named validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ForbiddenError carries a human-readable reason for an authorization
// denial. It unwraps to ErrForbidden.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }
