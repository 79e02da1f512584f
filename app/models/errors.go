package models

import "errors"

// Domain failure kinds. Services return these (possibly wrapped); the
// controller layer maps them to HTTP status codes.
var (
	// ErrDuplicateEmail: an account with that email already exists.
	ErrDuplicateEmail = errors.New("user already exists")

	// ErrInvalidCredentials: unknown email or password mismatch. The two
	// cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound: the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: the caller is not the owner/participant of the record.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation: a request failed input validation.
	ErrValidation = errors.New("validation failed")
)
