package store

import "sync"

// Lazy defers opening the document backend until the first read or write.
// Default values depend on environment state (the per-user config
// directory) that may not be available at process bootstrap, so the store
// must not open at module load. Concurrent first calls serialize on the
// once guard; the backend is opened and seeded exactly once.
type Lazy struct {
	open func() *Store

	once  sync.Once
	store *Store
}

// NewLazy wraps an open function that must always return a usable store
// (construction falls back to defaults instead of failing, see [New]).
func NewLazy(open func() *Store) *Lazy {
	return &Lazy{open: open}
}

// Store returns the underlying store, opening it on first call.
func (l *Lazy) Store() *Store {
	l.once.Do(func() {
		l.store = l.open()
	})
	return l.store
}
