package ratelimit

import (
	"context"
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

// memoryEntry tracks the consumed points for one key
type memoryEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// Memory is a process-local fixed-window limiter. State does not survive a
// restart and is not shared across instances.
type Memory struct {
	limit   int
	window  time.Duration
	entries sync.Map
}

func NewMemory(limit int, window time.Duration) *Memory {
	m := &Memory{
		limit:  limit,
		window: window,
	}
	go m.sweep()
	return m
}

func (m *Memory) Allow(_ context.Context, key string) (Decision, error) {
	now := time.Now()

	v, _ := m.entries.LoadOrStore(key, &memoryEntry{resetAt: now.Add(m.window)})
	entry := v.(*memoryEntry)

	// Check-and-increment is serialized per key so two concurrent requests
	// cannot both be admitted on the last remaining point.
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(m.window)
	}

	entry.count++

	if entry.count > m.limit {
		retryAfter := int(entry.resetAt.Sub(now).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		return Decision{RetryAfter: retryAfter, ResetAt: entry.resetAt}, nil
	}

	return Decision{
		Allowed:   true,
		Remaining: m.limit - entry.count,
		ResetAt:   entry.resetAt,
	}, nil
}

// sweep drops expired entries so idle keys do not accumulate forever.
func (m *Memory) sweep() {
	ticker := time.NewTicker(sweepInterval)
	for range ticker.C {
		now := time.Now()
		m.entries.Range(func(key, value interface{}) bool {
			entry := value.(*memoryEntry)
			entry.mu.Lock()
			if now.After(entry.resetAt) {
				m.entries.Delete(key)
			}
			entry.mu.Unlock()
			return true
		})
	}
}
