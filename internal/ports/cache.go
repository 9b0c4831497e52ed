package ports

import (
	"context"
	"time"

	"duogito/internal/domain/entity"
)

// CacheService defines a key/value cache with per-entry TTL
type CacheService interface {
	Get(ctx context.Context, key string) (any, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (entity.CacheStats, error)
}
