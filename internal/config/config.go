// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package config

import (
	"time"
)

// StructuredConfig is the top-level process configuration container. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings shared by host and front-end,
	// such as the read-API auth key and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the host's
	// HTTP listener (read API and dispatcher share one listener).
	Server Server `envPrefix:"SERVER_"`

	// Storage selects and configures the persisted-document backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the front-end's connection settings towards the host.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings for the front-end process.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings shared by both binaries.
type App struct {
	// AuthKey is the shared HMAC secret for read-API bearer tokens.
	// When empty, the read API is unauthenticated.
	// Env: APP_AUTH_KEY
	AuthKey string `env:"AUTH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the host's inbound listener.
type Server struct {
	// HTTPAddress is the TCP address the host listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// read-API request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage selects the backend that persists the configuration document.
// Selection order: DSN (postgres) wins, then SQLitePath, then DocumentPath
// (plain JSON file, the default).
type Storage struct {
	// DSN is a PostgreSQL connection string. When set, the document is
	// persisted in a single-row postgres table.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// SQLitePath is the path to an SQLite database file. When set (and DSN
	// is not), the document is persisted in a single-row sqlite table.
	// Env: STORAGE_SQLITE_PATH
	SQLitePath string `env:"SQLITE_PATH"`

	// DocumentPath is the path of the JSON document file. When empty, a
	// per-user default under the OS config directory is used; that default
	// is resolved on first store access, not at process bootstrap.
	// Env: STORAGE_DOCUMENT_PATH
	DocumentPath string `env:"DOCUMENT_PATH"`
}

// Adapter holds the front-end's outbound connection settings.
type Adapter struct {
	// BaseURL is the host's base URL (e.g. "http://localhost:34800").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings for the front-end process.
type Workers struct {
	// RefreshInterval defines how often the front-end re-reads the full
	// merged document to repair drift. Zero disables the refresh job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the host process
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    "localhost:34800",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			BaseURL:        "http://localhost:34800",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: 5 * time.Minute,
		},
	}
}
