// internal/store/redis.go
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"huntersite/internal/common/config"
	"huntersite/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a Redis backend. Records never expire:
// like the browser storage it replaces, data persists until deleted.
type RedisStore struct {
	client        *redis.Client
	prefix        string
	maxValueBytes int
	log           logger.Logger
}

// NewRedisStore creates a Redis-backed store. Every key is namespaced
// under cfg.KeyPrefix so unrelated applications sharing the instance
// cannot collide.
func NewRedisStore(cfg config.StorageConfig, log logger.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &RedisStore{
		client:        rdb,
		prefix:        cfg.KeyPrefix,
		maxValueBytes: cfg.MaxValueBytes,
		log:           log,
	}
}

// NewRedisStoreWithClient wraps an existing client; used by tests backed
// by miniredis.
func NewRedisStoreWithClient(client *redis.Client, prefix string, maxValueBytes int, log logger.Logger) *RedisStore {
	return &RedisStore{
		client:        client,
		prefix:        prefix,
		maxValueBytes: maxValueBytes,
		log:           log,
	}
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	raw, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		// Connectivity trouble reads as absent; callers fall back to
		// defaults rather than failing the operation.
		s.log.Warn("redis get failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return "", false
	}
	return raw, true
}

func (s *RedisStore) Set(ctx context.Context, key, raw string) error {
	if s.maxValueBytes > 0 && len(raw) > s.maxValueBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d byte limit for key %s",
			ErrCapacityExceeded, len(raw), s.maxValueBytes, key)
	}

	if err := s.client.Set(ctx, s.prefix+key, raw, 0).Err(); err != nil {
		if isRedisOOM(err) {
			return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
		}
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = s.prefix + k
	}
	return s.client.Del(ctx, prefixed...).Err()
}

func (s *RedisStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	prefixed, err := s.client.Keys(ctx, s.prefix+pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("redis keys %s: %w", pattern, err)
	}
	out := make([]string, 0, len(prefixed))
	for _, k := range prefixed {
		out = append(out, strings.TrimPrefix(k, s.prefix))
	}
	return out, nil
}

// GetClient returns the underlying *redis.Client for compatibility.
func (s *RedisStore) GetClient() *redis.Client {
	return s.client
}

// isRedisOOM matches the server-side maxmemory rejection.
func isRedisOOM(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "OOM")
}
