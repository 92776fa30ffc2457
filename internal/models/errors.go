package models

import "errors"

// Domain errors surfaced by repos and services; handlers map them onto
// HTTP statuses.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("access denied")
	ErrUnauthorized      = errors.New("invalid or missing credentials")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
)
