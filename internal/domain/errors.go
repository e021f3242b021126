package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("admin access required")
	ErrInvalidInput       = errors.New("invalid input")

	// Token verification failures. All of them collapse to 401 at the
	// HTTP boundary; callers that need the distinction use errors.Is.
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)
