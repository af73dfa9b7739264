package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vperelygin/go-conf-sync/internal/config"
	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/models"
)

// DocumentBackend persists the configuration document. The store is the
// exclusive writer; backends never interpret the tree.
type DocumentBackend interface {
	// Load reads the persisted document. A (nil, nil) return means no
	// document exists yet (first run).
	Load(ctx context.Context) (models.Tree, error)

	// Save durably writes the full document.
	Save(ctx context.Context, doc models.Tree) error

	// Close releases backend resources.
	Close() error
}

// NewBackend selects and opens a document backend from the storage
// configuration: a postgres DSN wins, then an sqlite path, then the plain
// JSON file (the default). SQL backends run their migrations on open.
func NewBackend(ctx context.Context, cfg config.Storage, log *logger.Logger) (DocumentBackend, error) {
	switch {
	case cfg.DSN != "":
		return NewPostgresBackend(ctx, cfg.DSN, log)
	case cfg.SQLitePath != "":
		return NewSQLiteBackend(ctx, cfg.SQLitePath, log)
	default:
		return NewFileBackend(documentPath(cfg), log), nil
	}
}

// documentPath resolves the JSON document location. The per-user default is
// computed here, on first store access, because the config directory is
// environment state that may not be known at process bootstrap.
func documentPath(cfg config.Storage) string {
	if cfg.DocumentPath != "" {
		return cfg.DocumentPath
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(configDir, "go-conf-sync", "config.json")
}
