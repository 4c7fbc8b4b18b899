package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "notes-service/internal/domain/user"
)

// UserCache defines the interface for user caching operations. The access
// gate resolves a token's user id on every protected request, so this cache
// keeps that hot lookup off the database. Users are immutable once created,
// so there is no invalidation path; entries simply age out via TTL.
type UserCache interface {
	// Get retrieves a user from cache by ID. Returns nil on a miss.
	Get(ctx context.Context, id int64) (*domain.User, error)

	// Set stores a user in cache with the configured TTL.
	Set(ctx context.Context, user *domain.User) error
}

// RedisUserCache implements UserCache using Redis as the backing store.
type RedisUserCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisUserCache creates a new Redis-backed user cache.
func NewRedisUserCache(client *redis.Client, ttl time.Duration, log *zap.Logger) UserCache {
	return &RedisUserCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// cacheKey generates a Redis key for a user ID.
func (c *RedisUserCache) cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// Get retrieves a user from Redis cache.
func (c *RedisUserCache) Get(ctx context.Context, id int64) (*domain.User, error) {
	key := c.cacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.Int64("user_id", id))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		c.log.Error("failed to unmarshal cached user", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.Int64("user_id", id))
	return &u, nil
}

// Set stores a user in Redis cache with TTL.
func (c *RedisUserCache) Set(ctx context.Context, u *domain.User) error {
	if u == nil {
		return fmt.Errorf("cannot cache nil user")
	}

	key := c.cacheKey(u.ID)

	data, err := json.Marshal(u)
	if err != nil {
		c.log.Error("failed to marshal user for cache", zap.Int64("user_id", u.ID), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.Int64("user_id", u.ID), zap.Error(err))
		return err
	}

	c.log.Debug("cached user", zap.Int64("user_id", u.ID), zap.Duration("ttl", c.ttl))
	return nil
}
