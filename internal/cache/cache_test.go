package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/example/job-board/internal/config"
)

func TestNewWithoutAddrIsNoop(t *testing.T) {
	c := New(&config.Config{})
	if _, ok := c.(Noop); !ok {
		t.Fatalf("got %T, want Noop", c)
	}

	var dest map[string]string
	if err := c.GetJSON(context.Background(), "post:1", &dest); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetJSON err = %v, want ErrNotFound", err)
	}
	if err := c.SetJSON(context.Background(), "post:1", map[string]string{"a": "b"}); err != nil {
		t.Fatal(err)
	}
	if err := c.Del(context.Background(), "post:1"); err != nil {
		t.Fatal(err)
	}
}

func TestRedisRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	r := NewRedisClient(&config.Config{RedisAddr: addr, CacheTTL: time.Minute})
	defer r.Close()

	ctx := context.Background()
	if err := r.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	key := "post:test-round-trip"
	type entry struct {
		Title string `json:"title"`
	}
	if err := r.SetJSON(ctx, key, entry{Title: "Go dev"}); err != nil {
		t.Fatal(err)
	}
	var got entry
	if err := r.GetJSON(ctx, key, &got); err != nil || got.Title != "Go dev" {
		t.Fatalf("GetJSON = %+v, %v", got, err)
	}
	if err := r.Del(ctx, key); err != nil {
		t.Fatal(err)
	}
	if err := r.GetJSON(ctx, key, &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after Del err = %v", err)
	}
}
