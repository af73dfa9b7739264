// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

// Package client implements the front-end application runtime.
//
// It wires the read-API adapter, the dispatcher connection, the in-memory
// configuration mirror, and the background refresh job into a single
// process lifecycle.
package client
