// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package client

import "context"

// Client defines the minimal lifecycle contract for runnable front-end
// applications.
type Client interface {
	// Run starts the front-end and blocks until ctx is cancelled.
	Run(ctx context.Context) error
}
