package harvest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/scripta/internal/platform/constants"
)

// RedisModifiedCache implements ModifiedCache on Redis. Values are stored
// as RFC 3339 nanosecond strings under a fixed key prefix so Flush can
// scan them without touching unrelated keys.
type RedisModifiedCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisModifiedCache creates a Redis-backed ModifiedCache with the
// given entry TTL.
func NewRedisModifiedCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisModifiedCache {
	return &RedisModifiedCache{client: client, ttl: ttl, logger: logger}
}

/*
Get retrieves a cached modification instant.

Description: Misses and connectivity failures are equivalent to the
caller; failures are logged and the tracker recomputes.

Parameters:
  - context: context.Context
  - key: string (Stream-qualified record key, e.g. "pub:42")

Returns:
  - time.Time: The cached instant
  - bool: Whether the entry was present and parseable
*/
func (cache *RedisModifiedCache) Get(context context.Context, key string) (time.Time, bool) {

	// Use constants for key prefix
	value, err := cache.client.Get(context, constants.RedisPrefixModified+key).Result()

	// Handle errors
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Warn("modified_cache_get_failed", "key", key, "error", err)
		}
		return time.Time{}, false
	}

	// Parse the stored instant
	instant, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		cache.logger.Warn("modified_cache_corrupt_entry", "key", key, "error", err)
		return time.Time{}, false
	}

	return instant, true
}

/*
Set stores a modification instant with the configured TTL.

Description: Failures are logged and swallowed; the cache never fails a
harvest call.

Parameters:
  - context: context.Context
  - key: string
  - value: time.Time
*/
func (cache *RedisModifiedCache) Set(context context.Context, key string, value time.Time) {

	// Use constants for key prefix
	redisKey := constants.RedisPrefixModified + key

	// Set the entry with TTL
	if err := cache.client.Set(context, redisKey, value.Format(time.RFC3339Nano), cache.ttl).Err(); err != nil {
		cache.logger.Warn("modified_cache_set_failed", "key", key, "error", err)
	}
}

/*
Flush removes every cached modification instant.

Description: Iterates the key prefix with SCAN so the flush never blocks
Redis the way KEYS would. Exposed to operators through the admin surface
for use after bulk CMS imports.

Parameters:
  - context: context.Context

Returns:
  - error: Scan or deletion failures
*/
func (cache *RedisModifiedCache) Flush(context context.Context) error {
	iter := cache.client.Scan(context, 0, constants.RedisPrefixModified+"*", 0).Iterator()

	for iter.Next(context) {
		if err := cache.client.Del(context, iter.Val()).Err(); err != nil {
			return fmt.Errorf("modified_cache_flush_failed: %w", err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("modified_cache_flush_failed: %w", err)
	}
	return nil
}
