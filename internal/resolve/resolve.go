// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

// Package resolve decides configuration merge precedence. It is the only
// place where override-wins semantics live; the service layer and the read
// API must route every read through [Resolve] and every write-admission
// check through [HasOverride] instead of re-implementing the rules.
package resolve

import (
	"github.com/vperelygin/go-conf-sync/models"
)

// Resolve produces the effective value for path by layering the override
// tree on top of the stored value. It is pure: neither input is mutated and
// the result shares no structure with them.
//
// Rules:
//   - no override at path: stored is returned unchanged;
//   - an override exists and stored is a scalar or absent: the override
//     fully replaces it;
//   - both sides hold objects: keys are merged recursively at every level,
//     override keys win per-key, keys present only in stored are preserved.
func Resolve(stored any, overrides models.Tree, path models.Path) any {
	override, ok := Lookup(overrides, path)
	if !ok {
		return stored
	}
	return merge(stored, override)
}

// MergeTrees layers layer over base with the same override-wins rule used
// for runtime resolution. The store seeds the persisted document with it
// (loaded values over defaults) so there is a single merge implementation.
func MergeTrees(base, layer models.Tree) models.Tree {
	merged, _ := merge(base, layer).(models.Tree)
	return merged
}

// HasOverride reports whether a write to path would be shadowed: true iff
// the override tree holds a value at path itself, or a scalar override at an
// ancestor covers it. The root path is shadowed only by a non-empty tree.
func HasOverride(overrides models.Tree, path models.Path) bool {
	if path.IsRoot() {
		return len(overrides) > 0
	}

	var current any = overrides
	for _, segment := range path {
		node, ok := current.(models.Tree)
		if !ok {
			// A scalar override above path covers everything below it.
			return true
		}
		if current, ok = node[segment]; !ok {
			return false
		}
	}
	return true
}

// Lookup descends tree along path. The second return reports whether a
// value (scalar or subtree) exists at exactly that address.
func Lookup(tree models.Tree, path models.Path) (any, bool) {
	var current any = tree
	for _, segment := range path {
		node, ok := current.(models.Tree)
		if !ok {
			return nil, false
		}
		if current, ok = node[segment]; !ok {
			return nil, false
		}
	}
	return current, true
}

// merge layers override onto stored. Anything but an object-onto-object
// combination is a full replacement; false, 0 and "" are overrides like any
// other value.
func merge(stored, override any) any {
	storedTree, storedOK := stored.(models.Tree)
	overrideTree, overrideOK := override.(models.Tree)
	if !storedOK || !overrideOK {
		return models.CloneValue(override)
	}

	merged := models.CloneTree(storedTree)
	for key, overrideValue := range overrideTree {
		if storedValue, ok := merged[key]; ok {
			merged[key] = merge(storedValue, overrideValue)
		} else {
			merged[key] = models.CloneValue(overrideValue)
		}
	}
	return merged
}
