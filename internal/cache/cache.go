package cache

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found in cache")

// Cache holds JSON-encoded values by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any) error
	Del(ctx context.Context, key string) error
	Close() error
}

// Noop is used when REDIS_ADDR is unset. Every read misses.
type Noop struct{}

var _ Cache = Noop{}

func (Noop) GetJSON(context.Context, string, any) error { return ErrNotFound }
func (Noop) SetJSON(context.Context, string, any) error { return nil }
func (Noop) Del(context.Context, string) error          { return nil }
func (Noop) Close() error                               { return nil }
