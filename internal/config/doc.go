// Package config provides configuration loading, merging, and validation for
// the two processes themselves (listen addresses, storage backend selection,
// timeouts). It is distinct from the managed configuration document that the
// host serves to front-ends; that document lives in internal/store.
//
// Process configuration is assembled from multiple sources in the following
// priority order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (single-dash; double-dash tokens belong to the
//     override parser and never reach this package)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the host process and
// [GetClientConfig] for the front-end process.
package config
