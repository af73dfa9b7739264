// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

// Package store owns the persisted configuration document. The document is
// seeded with defaults on first access, addressed by dot-delimited paths,
// and mutated only through [Store.Set]; change subscriptions fire
// synchronously after a write durably completes. Overrides never appear
// here — layering them on top is the resolver's job.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/internal/resolve"
	"github.com/vperelygin/go-conf-sync/models"
)

// ChangeHandler is invoked with (newValue, oldValue) at the subscribed path
// whenever the stored value there or under there changes.
type ChangeHandler func(newValue, oldValue any)

type subscription struct {
	path    models.Path
	handler ChangeHandler
}

// Store is the exclusive owner of the persisted document. All mutation goes
// through Set; Get and Document hand out copies so callers can never reach
// the backing tree.
type Store struct {
	backend DocumentBackend
	logger  *logger.Logger

	mu       sync.Mutex
	document models.Tree
	subs     []subscription
}

// New loads the persisted document from backend and seeds it with defaults.
//
// On first run (no document yet) the defaults are written back so the
// installation-scoped values (analytics app id, support user id) survive
// restarts. If the backing medium is unreadable or corrupt the store serves
// in-memory defaults and logs a warning; it never fails construction.
func New(ctx context.Context, backend DocumentBackend, log *logger.Logger) *Store {
	s := &Store{
		backend:  backend,
		logger:   log,
		document: Defaults(),
	}

	loaded, err := backend.Load(ctx)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("config store unavailable, falling back to defaults")
	case loaded == nil:
		if err = backend.Save(ctx, s.document); err != nil {
			log.Warn().Err(err).Msg("seeding config store with defaults failed")
		}
	default:
		s.document = resolve.MergeTrees(s.document, loaded)
	}

	return s
}

// Get returns a copy of the value at path: the written value, the nested
// subtree, or the default seeded at creation if never written. A path that
// exists nowhere yields nil rather than an error.
func (s *Store) Get(path models.Path) any {
	s.mu.Lock()
	value, ok := resolve.Lookup(s.document, path)
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return models.CloneValue(value)
}

// Document returns a deep copy of the full persisted document.
func (s *Store) Document() models.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneTree(s.document)
}

// Set writes value at path, creating intermediate nesting as needed, and
// persists the document before returning. Matching subscriptions fire
// synchronously, in registration order, after the write durably completes
// and before Set returns; an equal rewrite fires them again rather than
// deduplicating. If persistence fails the in-memory document is rolled back
// and no subscription fires.
func (s *Store) Set(ctx context.Context, path models.Path, value any) error {
	if path.IsRoot() {
		return ErrRootWrite
	}

	value = models.Normalize(value)

	s.mu.Lock()

	type firing struct {
		handler  ChangeHandler
		newValue any
		oldValue any
	}
	var firings []firing

	previous := s.document
	s.document = models.CloneTree(s.document)
	models.SetAtPath(s.document, path, models.CloneValue(value))

	if err := s.backend.Save(ctx, s.document); err != nil {
		s.document = previous
		s.mu.Unlock()
		return fmt.Errorf("persist document: %w", err)
	}

	for _, sub := range s.subs {
		if !path.HasPrefix(sub.path) && !sub.path.HasPrefix(path) {
			continue
		}
		oldValue, _ := resolve.Lookup(previous, sub.path)
		newValue, _ := resolve.Lookup(s.document, sub.path)
		firings = append(firings, firing{
			handler:  sub.handler,
			newValue: models.CloneValue(newValue),
			oldValue: models.CloneValue(oldValue),
		})
	}

	s.mu.Unlock()

	for _, f := range firings {
		f.handler(f.newValue, f.oldValue)
	}

	return nil
}

// OnChange registers handler for changes at path or any of its descendants.
// Multiple handlers may coexist per path; they are never torn down for the
// life of the process.
func (s *Store) OnChange(path models.Path, handler ChangeHandler) {
	s.mu.Lock()
	s.subs = append(s.subs, subscription{path: path, handler: handler})
	s.mu.Unlock()
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
