package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	c, err := NewCache("", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Enabled() {
		t.Fatalf("expected cache to be disabled")
	}

	ctx := context.Background()
	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set on disabled cache returned %v", err)
	}
	var dest string
	if err := c.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheDisabled) {
		t.Fatalf("expected ErrCacheDisabled, got %v", err)
	}
	if _, err := c.GetBytes(ctx, "k"); !errors.Is(err, ErrCacheDisabled) {
		t.Fatalf("expected ErrCacheDisabled, got %v", err)
	}
	exists, err := c.Exists(ctx, "k")
	if err != nil || exists {
		t.Fatalf("expected no key on disabled cache, got %v, %v", exists, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete on disabled cache returned %v", err)
	}
	if n, err := c.DeletePattern(ctx, "page:*"); n != 0 || err != nil {
		t.Fatalf("unexpected DeletePattern result %d, %v", n, err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close returned %v", err)
	}
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	if c.Enabled() {
		t.Fatalf("nil cache must report disabled")
	}
	if err := c.Set(context.Background(), "k", 1, 0); err != nil {
		t.Fatalf("Set on nil cache returned %v", err)
	}
}

func TestNewCacheRejectsBadURL(t *testing.T) {
	if _, err := NewCache("redis://:bad url", true); err == nil {
		t.Fatalf("expected error for malformed redis url")
	}
}
