package adapter

import "errors"

var (
	// ErrUnauthorized maps a 401 from the host's read API.
	ErrUnauthorized = errors.New("host rejected credentials")

	// ErrServerUnavailable wraps transport-level failures reaching the host.
	ErrServerUnavailable = errors.New("host unavailable")
)
