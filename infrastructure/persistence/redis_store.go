package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"berta-backend/domain/model"
	"berta-backend/domain/repository"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "berta:cache:"

// RedisStore is an alternative document store for deployments with an
// ephemeral filesystem (CACHE_BACKEND=redis). Documents are stored without
// TTL; staleness only triggers recomputation, never eviction.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(resource model.ResourceType) string {
	return redisKeyPrefix + string(resource)
}

func (s *RedisStore) Read(ctx context.Context, resource model.ResourceType) (*model.CacheDocument, error) {
	raw, err := s.client.Get(ctx, s.key(resource)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, fmt.Errorf("read cache key for %s: %w", resource, err)
	}

	var doc model.CacheDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode cache document for %s: %w", resource, err)
	}
	return &doc, nil
}

func (s *RedisStore) Write(ctx context.Context, resource model.ResourceType, doc *model.CacheDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode cache document for %s: %w", resource, err)
	}
	if err := s.client.Set(ctx, s.key(resource), raw, 0).Err(); err != nil {
		return fmt.Errorf("write cache key for %s: %w", resource, err)
	}
	return nil
}
