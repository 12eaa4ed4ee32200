package ratelimit

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const allowScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// Redis is a fixed-window limiter backed by a shared Redis instance, for
// deployments with more than one process behind the same quota.
type Redis struct {
	client *goredis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedis(client *goredis.Client, limit int, window time.Duration) *Redis {
	return &Redis{
		client: client,
		limit:  limit,
		window: window,
		prefix: "rl:ip:",
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (Decision, error) {
	ttlSeconds := int(r.window.Seconds())

	result, err := r.client.Eval(ctx, allowScript, []string{r.prefix + key}, ttlSeconds).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return Decision{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	resetAt := time.Now().Add(time.Duration(ttl) * time.Second)

	if int(count) > r.limit {
		retryAfter := int(ttl)
		if retryAfter < 1 {
			retryAfter = 1
		}
		return Decision{RetryAfter: retryAfter, ResetAt: resetAt}, nil
	}

	remaining := r.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: true, Remaining: remaining, ResetAt: resetAt}, nil
}
