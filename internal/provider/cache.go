package provider

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded provider responses in redis. All methods are
// no-ops when the client is nil, so callers never branch on availability.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// Get unmarshals the cached value for key into out. Returns false on miss,
// redis being unavailable, or a stale encoding that no longer decodes.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.redis == nil {
		return false
	}
	raw, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, raw, c.ttl).Err()
}
