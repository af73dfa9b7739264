// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

// Package overrides turns process start-up arguments and environment
// variables into an immutable configuration override tree. Values from this
// tree always take precedence over the persisted document and are never
// writable at runtime.
package overrides

import (
	"encoding/json"
	"strings"

	"github.com/vperelygin/go-conf-sync/models"
)

// EnvPrefix marks environment variables that carry configuration overrides.
// Double underscores separate path segments, a single underscore inside a
// segment camel-cases the following word:
//
//	OT_APP_UPDATE__CHANNEL=beta        -> update.channel = "beta"
//	OT_APP_ANALYTICS__OPTED_IN=false   -> analytics.optedIn = false
const EnvPrefix = "OT_APP_"

// negatePrefix lets a command-line flag explicitly disable a boolean:
// --disable_devtools sets devtools = false.
const negatePrefix = "disable_"

// Parse builds an override tree from command-line arguments and environment
// entries (os.Environ form, "KEY=VALUE"). It is a pure function: the same
// inputs always yield the same tree.
//
// Flags use literal dot-paths: --log.level.console=debug, --ui.width 800,
// bare --devtools means true, --disable_devtools means false. Arguments are
// applied after environment entries, so a flag wins over an env var
// addressing the same path. Malformed tokens are skipped, never fatal.
func Parse(args []string, environ []string) models.Tree {
	tree := models.Tree{}

	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}

		path := envPath(strings.TrimPrefix(key, EnvPrefix))
		if len(path) == 0 {
			continue
		}
		models.SetAtPath(tree, path, parseScalar(value))
	}

	for i := 0; i < len(args); i++ {
		name, ok := strings.CutPrefix(args[i], "--")
		if !ok || name == "" {
			continue
		}

		value := any(true)
		if cut, raw, found := strings.Cut(name, "="); found {
			name = cut
			value = parseScalar(raw)
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			value = parseScalar(args[i])
		}

		if trimmed, negated := strings.CutPrefix(name, negatePrefix); negated {
			name = trimmed
			value = false
		}

		path := models.ParsePath(name)
		if malformed(path) {
			continue
		}
		models.SetAtPath(tree, path, value)
	}

	return tree
}

// envPath converts an env var suffix into path segments:
// "LOG__LEVEL__CONSOLE" -> [log level console], "OPTED_IN" -> [optedIn].
func envPath(suffix string) models.Path {
	rawSegments := strings.Split(suffix, "__")
	path := make(models.Path, 0, len(rawSegments))

	for _, raw := range rawSegments {
		if raw == "" {
			return nil
		}
		path = append(path, camelCase(raw))
	}
	return path
}

func camelCase(segment string) string {
	words := strings.Split(strings.ToLower(segment), "_")
	out := words[0]
	for _, w := range words[1:] {
		if w == "" {
			continue
		}
		out += strings.ToUpper(w[:1]) + w[1:]
	}
	return out
}

func malformed(path models.Path) bool {
	if len(path) == 0 {
		return true
	}
	for _, seg := range path {
		if seg == "" {
			return true
		}
	}
	return false
}

// parseScalar decodes a raw token through JSON rules so "true", "800" and
// "null" become typed values; anything that is not valid JSON stays a string.
func parseScalar(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
