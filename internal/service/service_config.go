// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package service

import (
	"context"
	"fmt"

	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/internal/overrides"
	"github.com/vperelygin/go-conf-sync/internal/resolve"
	"github.com/vperelygin/go-conf-sync/internal/store"
	"github.com/vperelygin/go-conf-sync/models"
)

// ConfigService is the host-side facade over the persisted store, the
// override source and the resolver. Every read and every inbound change
// request goes through here so override precedence is applied in exactly
// one place.
type ConfigService struct {
	store     *store.Lazy
	overrides *overrides.Source
	dispatch  Broadcaster
	logger    *logger.Logger
}

// NewConfigService wires the host configuration facade.
func NewConfigService(lazy *store.Lazy, source *overrides.Source, dispatch Broadcaster, log *logger.Logger) *ConfigService {
	return &ConfigService{
		store:     lazy,
		overrides: source,
		dispatch:  dispatch,
		logger:    log,
	}
}

// HandleUpdate processes one config:UPDATE request from a front-end.
//
// A path shadowed by a runtime override is dropped: logged, not persisted,
// not broadcast, and no error goes back to the requester. An admitted write
// is persisted first and then confirmed to all front-ends with a config:SET
// carrying the same payload. A write that fails to persist is not broadcast.
func (s *ConfigService) HandleUpdate(ctx context.Context, payload models.UpdateAction) {
	path := models.ParsePath(payload.Path)

	if resolve.HasOverride(s.overrides.Tree(), path) {
		s.logger.Info().Str("path", payload.Path).Msg("ignoring update to override-shadowed value")
		return
	}

	if err := s.store.Store().Set(ctx, path, payload.Value); err != nil {
		s.logger.Error().Err(err).Str("path", payload.Path).Msg("config update failed")
		return
	}

	s.dispatch.Broadcast(models.Action{Type: models.ActionConfigSet, Payload: payload})
}

// SetValue writes value at the dot-delimited path on behalf of the host
// process itself and confirms it to front-ends the same way an admitted
// front-end request would be. Shadowed paths return an error here rather
// than being silently dropped, since the caller is local.
func (s *ConfigService) SetValue(ctx context.Context, rawPath string, value any) error {
	path := models.ParsePath(rawPath)

	if resolve.HasOverride(s.overrides.Tree(), path) {
		return fmt.Errorf("set %q: %w", rawPath, ErrPathOverridden)
	}

	if err := s.store.Store().Set(ctx, path, value); err != nil {
		return fmt.Errorf("set %q: %w", rawPath, err)
	}

	s.dispatch.Broadcast(models.Action{
		Type:    models.ActionConfigSet,
		Payload: models.UpdateAction{Path: rawPath, Value: models.Normalize(value)},
	})
	return nil
}

// GetConfig returns the effective value at the dot-delimited path: the
// stored value with runtime overrides layered on top. The empty path yields
// the full resolved document. A path that exists nowhere yields nil.
func (s *ConfigService) GetConfig(rawPath string) any {
	path := models.ParsePath(rawPath)
	return resolve.Resolve(s.store.Store().Get(path), s.overrides.Tree(), path)
}

// GetFullConfig returns the complete resolved document.
func (s *ConfigService) GetFullConfig() models.Tree {
	tree, _ := s.GetConfig("").(models.Tree)
	return tree
}

// GetOverrides returns the override value at the dot-delimited path, or the
// whole override tree for the empty path. Nil when nothing is overridden
// there. The result is a copy.
func (s *ConfigService) GetOverrides(rawPath string) any {
	value, ok := resolve.Lookup(s.overrides.Tree(), models.ParsePath(rawPath))
	if !ok {
		return nil
	}
	return models.CloneValue(value)
}

// GetStore returns a copy of the persisted document exactly as written,
// without override layering.
func (s *ConfigService) GetStore() models.Tree {
	return s.store.Store().Document()
}

// OnChange subscribes handler to stored-value changes at the dot-delimited
// path or any of its descendants.
func (s *ConfigService) OnChange(rawPath string, handler store.ChangeHandler) {
	s.store.Store().OnChange(models.ParsePath(rawPath), handler)
}
