package service

import "errors"

var (
	// ErrPathOverridden rejects a local write to a path shadowed by a
	// runtime override.
	ErrPathOverridden = errors.New("path is shadowed by a runtime override")

	// ErrNotSeeded is returned by client reads before the mirror has been
	// populated from the host.
	ErrNotSeeded = errors.New("config mirror not seeded yet")
)
