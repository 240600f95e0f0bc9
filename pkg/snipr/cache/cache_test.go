package cache

import (
	"context"
	"testing"
)

// A nil cache is the disabled configuration; every operation must be a no-op.
func TestNilCache(t *testing.T) {
	var c *Cache

	if got := c.GetURL(context.Background(), "abc1234"); got != "" {
		t.Errorf("Expected miss on nil cache, got %q", got)
	}

	// Must not panic
	c.SetURL(context.Background(), "abc1234", "https://example.com")
}

func TestKeyNamespacing(t *testing.T) {
	if key("abc1234") != "snipr:url:abc1234" {
		t.Errorf("Unexpected cache key %q", key("abc1234"))
	}
}
