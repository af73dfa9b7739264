// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package models

import "encoding/json"

// Tree is an arbitrarily nested mapping from string keys to either scalar
// values (bool, float64, string, nil) or nested Trees. It represents both
// the persisted configuration document and the override tree.
//
// Keys within one tree are unique; ordering is irrelevant. Scalars follow
// JSON typing rules so a value that crossed the dispatcher compares equal
// to one read locally.
type Tree = map[string]any

// CloneTree returns a deep copy of t. A nil tree clones to nil.
func CloneTree(t Tree) Tree {
	if t == nil {
		return nil
	}

	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue returns a deep copy of a configuration value: nested trees and
// slices are copied recursively, scalars are returned as-is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case Tree:
		return CloneTree(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}

// SetAtPath writes value at path, creating intermediate objects as needed.
// Writing through an existing scalar replaces it with an object. The root
// path is not addressable here; callers replace the whole tree instead.
func SetAtPath(tree Tree, path Path, value any) {
	if path.IsRoot() {
		return
	}

	node := tree
	for _, segment := range path[:len(path)-1] {
		next, ok := node[segment].(Tree)
		if !ok {
			next = Tree{}
			node[segment] = next
		}
		node = next
	}
	node[path[len(path)-1]] = value
}

// Normalize re-types v through JSON encoding rules (numbers become float64,
// structs and typed maps become Tree). Values arriving from the dispatcher,
// the read API, and the store all pass through here so that comparisons and
// merges operate on one representation.
func Normalize(v any) any {
	if v == nil {
		return nil
	}

	switch v.(type) {
	case bool, float64, string:
		return v
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}

	var out any
	if err = json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
