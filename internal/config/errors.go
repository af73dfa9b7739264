package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or contradictory.
var (
	// ErrInvalidServerConfigs indicates invalid host listener settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates contradictory document backend
	// settings (for example, both a postgres DSN and an sqlite path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid front-end adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
