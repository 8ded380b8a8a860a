package report

import (
	"context"
	"time"
)

// Cache stores serialized report results. pkg/cache.RedisClient satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) (int, error)
}
