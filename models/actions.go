// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package models

import (
	"encoding/json"
	"fmt"
)

// Action type strings are the wire contract of the dispatcher channel.
// The type string doubles as the socket event name.
const (
	// ActionConfigUpdate is a write request, front-end -> host.
	ActionConfigUpdate = "config:UPDATE"

	// ActionConfigSet is an applied-write confirmation, host -> all
	// connected front-ends. A shadowed request never produces one.
	ActionConfigSet = "config:SET"
)

// UpdateAction is the payload of both action types: a requested or applied
// mutation of the persisted document at a dot-delimited path.
type UpdateAction struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// Action is a tagged message carried over the dispatcher. The dispatcher
// itself never interprets the payload.
type Action struct {
	Type    string       `json:"type"`
	Payload UpdateAction `json:"payload"`
}

// DecodeUpdateAction converts a raw decoded message body (as delivered by
// the socket layer, typically map[string]any) into an [UpdateAction].
func DecodeUpdateAction(raw any) (UpdateAction, error) {
	body, err := json.Marshal(raw)
	if err != nil {
		return UpdateAction{}, fmt.Errorf("encode action payload: %w", err)
	}

	var payload UpdateAction
	if err = json.Unmarshal(body, &payload); err != nil {
		return UpdateAction{}, fmt.Errorf("decode action payload: %w", err)
	}

	payload.Value = Normalize(payload.Value)
	return payload, nil
}
