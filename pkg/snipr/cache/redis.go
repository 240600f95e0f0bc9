// Package cache provides an optional Redis-backed cache for redirect
// resolution. A nil *Cache disables caching entirely.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const urlTTL = 24 * time.Hour

// Cache wraps a Redis client for short-id → original-URL lookups.
type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection with a ping.
func New(addr, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Cache{client: client}, nil
}

// GetURL returns the cached original URL for a short id, or "" on miss.
// A nil cache always misses.
func (c *Cache) GetURL(ctx context.Context, shortID string) string {
	if c == nil {
		return ""
	}
	val, err := c.client.Get(ctx, key(shortID)).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetURL caches the original URL for a short id. No-op on a nil cache;
// cache write failures are ignored, the store stays authoritative.
func (c *Cache) SetURL(ctx context.Context, shortID, originalURL string) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key(shortID), originalURL, urlTTL)
}

func key(shortID string) string {
	return "snipr:url:" + shortID
}
