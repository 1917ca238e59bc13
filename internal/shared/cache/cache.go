// Package cache holds short-lived, recomputable values (home feed, checkout
// idempotency locks). Unlike storage.Store this data may vanish at any time.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// TryLock atomically claims key for ttl. Used as a checkout idempotency
	// guard: the second submit with the same key loses the race.
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}
