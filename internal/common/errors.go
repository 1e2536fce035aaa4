// Package common defines shared constants and sentinel errors used across
// client and server layers of GestorDoc. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Input errors.
	ErrorValidation = errors.New("validation error")
	ErrorConflict   = errors.New("already exists")

	// Session lifecycle errors.
	ErrorInvalidToken   = errors.New("invalid token")
	ErrorSessionExpired = errors.New("session expired")
)

// UserError carries a message that is safe to show to the end user while
// unwrapping to one of the sentinel kinds above, so boundaries can branch
// with errors.Is and still surface the original wording.
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Kind }

// Validation wraps msg as a user-correctable input error.
func Validation(msg string) error {
	return &UserError{Kind: ErrorValidation, Message: msg}
}

// Conflict wraps msg as a uniqueness-violation error.
func Conflict(msg string) error {
	return &UserError{Kind: ErrorConflict, Message: msg}
}

// Unauthorized wraps msg as an authentication failure. The message must be
// uniform for all credential failures to avoid user enumeration.
func Unauthorized(msg string) error {
	return &UserError{Kind: ErrorUnauthorized, Message: msg}
}
