package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cache keys shared between the stats reader and the writers that
// invalidate it.
const KeyDashboardStats = "placehub:stats:dashboard"

// StatsCache is an advisory redis cache in front of the dashboard
// derivations. Misses and redis failures fall through to recomputation;
// callers must treat cached values as possibly stale until the next
// invalidation.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewStatsCache connects to redis with short timeouts. A nil return
// means caching is disabled and every read recomputes.
func NewStatsCache(addr string, ttl time.Duration, logger zerolog.Logger) *StatsCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &StatsCache{client: client, ttl: ttl, logger: logger}
}

// Get unmarshals the cached value for key into dest, reporting whether
// a usable value was found.
func (c *StatsCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("stats cache entry corrupt, ignoring")
		return false
	}
	return true
}

// Set stores value under key. Failures are logged and swallowed: the
// cache is advisory.
func (c *StatsCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("stats cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}
}

// Invalidate drops the given keys. Called after every placement or
// drive mutation so dashboards never drift for longer than one request.
func (c *StatsCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn().Err(err).Strs("keys", keys).Msg("stats cache invalidation failed")
	}
}

// Healthy verifies redis connectivity.
func (c *StatsCache) Healthy(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}
