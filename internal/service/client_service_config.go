// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/vperelygin/go-conf-sync/internal/adapter"
	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/internal/resolve"
	"github.com/vperelygin/go-conf-sync/models"
)

// ClientConfigService keeps the front-end's in-memory mirror of the resolved
// configuration document. The mirror is seeded over the read API, kept
// current by applying config:SET confirmations, and periodically re-read to
// repair drift.
//
// Writes are requests, not mutations: RequestUpdate sends config:UPDATE and
// returns immediately. The mirror changes only when the host confirms.
type ClientConfigService struct {
	adapter adapter.ServerAdapter
	sender  UpdateSender
	logger  *logger.Logger

	mu     sync.RWMutex
	mirror models.Tree
	seeded bool
}

// NewClientConfigService wires the front-end configuration mirror.
func NewClientConfigService(adp adapter.ServerAdapter, sender UpdateSender, log *logger.Logger) *ClientConfigService {
	return &ClientConfigService{
		adapter: adp,
		sender:  sender,
		logger:  log,
	}
}

// Refresh replaces the mirror with a fresh full read from the host. Used
// both for the initial seed and by the periodic refresh job.
func (s *ClientConfigService) Refresh(ctx context.Context) error {
	tree, err := s.adapter.FullConfig(ctx)
	if err != nil {
		return fmt.Errorf("refresh config mirror: %w", err)
	}

	s.mu.Lock()
	s.mirror = tree
	s.seeded = true
	s.mu.Unlock()

	s.logger.Debug().Msg("config mirror refreshed")
	return nil
}

// ApplySet folds one host-confirmed change into the mirror. Confirmations
// arriving before the first seed are applied to an empty document; the next
// Refresh reconciles.
func (s *ClientConfigService) ApplySet(payload models.UpdateAction) {
	path := models.ParsePath(payload.Path)
	if path.IsRoot() {
		return
	}

	s.mu.Lock()
	if s.mirror == nil {
		s.mirror = models.Tree{}
	}
	models.SetAtPath(s.mirror, path, models.Normalize(payload.Value))
	s.mu.Unlock()

	s.logger.Debug().Str("path", payload.Path).Msg("applied confirmed config change")
}

// GetConfig returns a copy of the mirrored value at the dot-delimited path,
// or nil when the path exists nowhere. Reads before the first successful
// seed return ErrNotSeeded.
func (s *ClientConfigService) GetConfig(rawPath string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.seeded {
		return nil, ErrNotSeeded
	}

	value, ok := resolve.Lookup(s.mirror, models.ParsePath(rawPath))
	if !ok {
		return nil, nil
	}
	return models.CloneValue(value), nil
}

// FullConfig returns a copy of the whole mirrored document.
func (s *ClientConfigService) FullConfig() (models.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.seeded {
		return nil, ErrNotSeeded
	}
	return models.CloneTree(s.mirror), nil
}

// RequestUpdate asks the host to change the value at the dot-delimited
// path. Fire-and-forget: a nil return means the request was sent, not that
// it was accepted. Requests to override-shadowed paths are dropped by the
// host without any reply.
func (s *ClientConfigService) RequestUpdate(rawPath string, value any) error {
	payload := models.UpdateAction{Path: rawPath, Value: models.Normalize(value)}
	if err := s.sender.SendUpdate(payload); err != nil {
		return fmt.Errorf("request update of %q: %w", rawPath, err)
	}

	s.logger.Debug().Str("path", rawPath).Msg("update requested")
	return nil
}
