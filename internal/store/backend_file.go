package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/models"
)

// fileBackend persists the document as a single JSON file, the default
// backend. The file is created on first save with owner-only permissions.
type fileBackend struct {
	path   string
	logger *logger.Logger
}

// NewFileBackend constructs a [DocumentBackend] over a JSON file at path.
func NewFileBackend(path string, log *logger.Logger) DocumentBackend {
	return &fileBackend{path: path, logger: log}
}

func (f *fileBackend) Load(_ context.Context) (models.Tree, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read document file: %w", ErrStoreUnavailable, err)
	}

	var doc models.Tree
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode document file %s: %w", ErrStoreUnavailable, f.path, err)
	}

	return doc, nil
}

func (f *fileBackend) Save(_ context.Context, doc models.Tree) error {
	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create document dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if err = os.WriteFile(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("write document file: %w", err)
	}

	return nil
}

func (f *fileBackend) Close() error {
	return nil
}
