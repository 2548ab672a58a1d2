package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	UserKeyPrefix  = "user:%s"
	ShareKeyPrefix = "share:%s"
)

const (
	UserTTL  = 30 * time.Minute
	ShareTTL = 10 * time.Minute
)

func UserKey(userID string) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ShareKey(hash string) string {
	return fmt.Sprintf(ShareKeyPrefix, hash)
}

// Cache is a cache-aside helper over Redis. A nil client disables caching
// and every call falls through to the source.
type Cache struct {
	client *redis.Client
}

// New wraps client. client may be nil.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Enabled reports whether a Redis client is configured.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first; on a miss or a Redis failure it calls fetch,
// which must populate dest, then stores dest with ttl unless the key was
// written while fetch ran. A value stored by SetJSON in that window, such as
// a revocation marker, is kept. Cache writes are best-effort. Errors from
// fetch are returned as-is and nothing is cached.
func (c *Cache) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if found, err := c.GetJSON(ctx, key, dest); err == nil && found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = c.addJSON(ctx, key, dest, ttl)
	return nil
}

// addJSON sets key only when it does not exist.
func (c *Cache) addJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.SetNX(ctx, key, b, ttl).Err()
}

// Invalidate removes key. Failures are ignored; entries expire on their own.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c.Enabled() {
		c.client.Del(ctx, key)
	}
}
