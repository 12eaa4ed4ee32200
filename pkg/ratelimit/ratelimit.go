// Package ratelimit bounds submission frequency per client key using fixed
// windows: a key's counter accumulates until the window elapses, then resets
// entirely. Two backends exist, an in-memory one for single instances and a
// Redis one so horizontally scaled instances can share quota.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Remaining int
	// RetryAfter is the whole seconds until the window resets, at least 1.
	// Only meaningful when Allowed is false.
	RetryAfter int
	ResetAt    time.Time
}

// Limiter admits or rejects one request for a client key. Rejection is a
// normal control-flow outcome, not an error; a non-nil error means the
// backend itself failed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
