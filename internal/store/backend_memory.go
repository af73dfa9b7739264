package store

import (
	"context"
	"sync"

	"github.com/vperelygin/go-conf-sync/models"
)

// memoryBackend keeps the document in process memory only. Used as a
// degraded fallback when the configured backend cannot be opened, and in
// tests.
type memoryBackend struct {
	mu  sync.Mutex
	doc models.Tree
}

// NewMemoryBackend returns a backend that never persists anything beyond
// the process lifetime.
func NewMemoryBackend() DocumentBackend {
	return &memoryBackend{}
}

func (b *memoryBackend) Load(_ context.Context) (models.Tree, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.doc == nil {
		return nil, nil
	}
	return models.CloneTree(b.doc), nil
}

func (b *memoryBackend) Save(_ context.Context, doc models.Tree) error {
	b.mu.Lock()
	b.doc = models.CloneTree(doc)
	b.mu.Unlock()
	return nil
}

func (b *memoryBackend) Close() error {
	return nil
}
