// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package adapter

import (
	"context"

	"github.com/vperelygin/go-conf-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the front-end's read-only view of the host. Writes never
// travel this way; they go through the dispatcher.
type ServerAdapter interface {
	// FullConfig fetches the complete resolved document (overrides applied).
	FullConfig(ctx context.Context) (models.Tree, error)

	// ConfigValue fetches the effective value at the dot-delimited path.
	ConfigValue(ctx context.Context, path string) (any, error)

	// Overrides fetches the override value at the dot-delimited path, or the
	// whole override tree for the empty path. Nil when nothing is overridden.
	Overrides(ctx context.Context, path string) (any, error)

	// StoreDocument fetches the persisted document without override layering.
	StoreDocument(ctx context.Context) (models.Tree, error)

	// ServerVersion fetches the host's version string.
	ServerVersion(ctx context.Context) (string, error)
}
