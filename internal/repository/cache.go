package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dimasprayogo252/api-film-tugas/pkg/logger"
)

// Cache entry lifetimes. A read that fills the cache just after a write
// invalidated it can leave a stale entry, so MaxCacheTTL bounds that staleness.
const (
	DefaultCacheTTL = 30 * time.Second
	MaxCacheTTL     = time.Minute
)

func cacheTTL(ttl time.Duration) time.Duration {
	switch {
	case ttl <= 0:
		return DefaultCacheTTL
	case ttl > MaxCacheTTL:
		return MaxCacheTTL
	default:
		return ttl
	}
}

// Cache is the subset of the Redis client used by cached repositories
type Cache interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// cacheGet decodes key into dst. Any Redis or decode failure is a miss.
func cacheGet(ctx context.Context, cache Cache, key string, dst interface{}) bool {
	cached, err := cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			logger.Get().Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		logger.Get().Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func cacheSet(ctx context.Context, cache Cache, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, string(data), ttl).Err(); err != nil {
		logger.Get().Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheDel(ctx context.Context, cache Cache, keys ...string) {
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		logger.Get().Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
