package repository

import (
	"context"
	"errors"

	"berta-backend/domain/model"
)

// ErrCacheMiss is returned by Read when no document exists for the resource.
var ErrCacheMiss = errors.New("cache document not found")

// ICacheStore persists one document per resource type. Write replaces the
// stored document wholesale; a reader racing a write must observe either the
// old or the new complete document, never a partial one.
type ICacheStore interface {
	Read(ctx context.Context, resource model.ResourceType) (*model.CacheDocument, error)
	Write(ctx context.Context, resource model.ResourceType, doc *model.CacheDocument) error
}
