package service

import "errors"

// Domain errors. Handlers map these onto HTTP status codes; nothing below
// ever carries internal detail (hash internals, SQL text) outward.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password so login failures cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConflict covers username/email uniqueness violations.
	ErrConflict = errors.New("username or email already exists")
)

// ValidationError carries a user-facing message about malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
