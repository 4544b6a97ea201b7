package cache

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	a := Key("inventory:prod_12345:stock_count", map[string]string{"warehouse": "NY", "zone": "a"})
	b := Key("inventory:prod_12345:stock_count", map[string]string{"zone": "a", "warehouse": "NY"})
	if a != b {
		t.Fatalf("expected identical keys, got %q and %q", a, b)
	}

	c := Key("inventory:prod_12345:stock_count", map[string]string{"warehouse": "SF"})
	if a == c {
		t.Fatal("expected differing parameters to produce differing keys")
	}

	if bare := Key("inventory:prod_12345:stock_count", nil); bare != "inventory:prod_12345:stock_count" {
		t.Fatalf("unexpected bare key: %q", bare)
	}
}

func TestCache(t *testing.T) {
	t.Run("Returns a value within its TTL", func(t *testing.T) {
		c := New(time.Minute)
		c.Set("k", "v", time.Minute)

		value, ok := c.Get("k")
		if !ok {
			t.Fatal("expected a hit")
		}
		if value.(string) != "v" {
			t.Fatalf("unexpected value: %v", value)
		}
	})

	t.Run("Misses after the TTL elapses", func(t *testing.T) {
		c := New(time.Minute)
		c.Set("k", "v", 10*time.Millisecond)

		time.Sleep(20 * time.Millisecond)

		if _, ok := c.Get("k"); ok {
			t.Fatal("expected a miss after expiry")
		}
	})

	t.Run("Misses on an unknown key", func(t *testing.T) {
		c := New(time.Minute)
		if _, ok := c.Get("absent"); ok {
			t.Fatal("expected a miss")
		}
	})
}
