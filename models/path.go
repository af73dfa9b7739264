// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package models

import "strings"

// Path is a parsed dot-delimited address into a [Tree]
// (e.g. "log.level.console" -> ["log", "level", "console"]).
// The empty path addresses the tree root.
type Path []string

// ParsePath splits a dot-delimited address into path segments.
// An empty string parses to the root path.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

// String joins the path segments back into dot-delimited form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// IsRoot reports whether p addresses the tree root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// HasPrefix reports whether p is prefix itself or a descendant of prefix.
// Every path is a descendant of the root path.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, seg := range prefix {
		if p[i] != seg {
			return false
		}
	}
	return true
}
