package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"berta-backend/domain/model"
	"berta-backend/domain/repository"
	"berta-backend/infrastructure/logger"
)

// FileStore persists one JSON document per resource type under a directory.
// Writes go through a temp file in the same directory followed by a rename,
// so a reader racing a write observes either the old or the new complete
// document, never a truncated one.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(resource model.ResourceType) string {
	return filepath.Join(s.dir, string(resource)+".json")
}

func (s *FileStore) Read(_ context.Context, resource model.ResourceType) (*model.CacheDocument, error) {
	raw, err := os.ReadFile(s.path(resource))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrCacheMiss
		}
		return nil, fmt.Errorf("read cache file for %s: %w", resource, err)
	}

	var doc model.CacheDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.GetLogger().WithField("resource", resource).WithField("error", err).Warn("Corrupt cache file, treating as missing")
		return nil, repository.ErrCacheMiss
	}
	return &doc, nil
}

func (s *FileStore) Write(_ context.Context, resource model.ResourceType, doc *model.CacheDocument) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode cache document for %s: %w", resource, err)
	}

	tmp, err := os.CreateTemp(s.dir, string(resource)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file for %s: %w", resource, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp cache file for %s: %w", resource, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp cache file for %s: %w", resource, err)
	}
	if err := os.Rename(tmp.Name(), s.path(resource)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache file for %s: %w", resource, err)
	}
	return nil
}
