package domain

import "errors"

// Sentinel errors. The HTTP layer maps each to a status code and a sanitized
// message in one place (internal/api/error_handler.go); services and
// repositories return these and never format HTTP responses themselves.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
