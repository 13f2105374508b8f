package database

import (
	"context"
	"fmt"

	"github.com/neetabhyas/content-pipeline/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewRedisClient creates and validates a Redis client connection.
func NewRedisClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Msg("Redis connected")

	return rdb, nil
}

// RedisInvalidator deletes stale cache entries after content writes.
// The serving app caches chapter payloads and topic question sets; every
// seed run must drop the keys it touched so readers pick up fresh rows.
type RedisInvalidator struct {
	rdb *redis.Client
}

// NewRedisInvalidator wraps a Redis client for cache invalidation.
func NewRedisInvalidator(rdb *redis.Client) *RedisInvalidator {
	return &RedisInvalidator{rdb: rdb}
}

// Invalidate removes the given cache keys. Missing keys are not an error.
func (i *RedisInvalidator) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := i.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate cache keys: %w", err)
	}
	return nil
}
