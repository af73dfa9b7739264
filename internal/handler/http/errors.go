package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader indicates the "Authorization" header was absent.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader indicates the header was not of the form
	// "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken indicates the bearer token part was an empty string.
	ErrEmptyToken = errors.New("token is empty")

	// ErrUnexpectedSigningMethod rejects tokens signed with anything but HMAC.
	ErrUnexpectedSigningMethod = errors.New("unexpected token signing method")
)
