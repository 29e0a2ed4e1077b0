package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers request keys for a limited time so that a
// retried mutation is not applied twice.
type IdempotencyStore interface {
	// Reserve claims the key for ttl.
	// Returns true if the key was newly claimed, false if it is already held.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release drops a claimed key so it can be used again
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}
