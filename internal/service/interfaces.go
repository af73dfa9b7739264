// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package service

import "github.com/vperelygin/go-conf-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// Broadcaster fans a confirmed action out to every connected front-end.
type Broadcaster interface {
	Broadcast(action models.Action)
}

// UpdateSender carries a change request from a front-end to the host.
// Fire-and-forget: a dropped request never produces a reply.
type UpdateSender interface {
	SendUpdate(payload models.UpdateAction) error
}
