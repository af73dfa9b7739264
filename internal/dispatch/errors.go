package dispatch

import "errors"

var (
	// ErrNotConnected is returned when sending before Connect succeeded
	// or after the connection dropped.
	ErrNotConnected = errors.New("dispatcher is not connected")

	// ErrConnectTimeout is returned when the initial connection does not
	// come up within the configured window.
	ErrConnectTimeout = errors.New("timed out waiting for dispatcher connection")
)
