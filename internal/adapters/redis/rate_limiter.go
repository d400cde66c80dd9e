package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit"

// RateLimiter - фиксированное окно: INCR по ключу окна и EXPIRE на длину окна
type RateLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRateLimiter(client redis.Cmdable, limit int, window time.Duration) (*RateLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if limit <= 0 || window <= 0 {
		return nil, fmt.Errorf("rate limit and window must be positive")
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window, now: time.Now}, nil
}

func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	windowKey, retryAfter := windowKey(key, r.now(), r.window)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, windowKey)
		pipe.Expire(ctx, windowKey, r.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("rate limiter: %w", err)
	}

	if incr.Val() > r.limit {
		return false, retryAfter, nil
	}
	return true, 0, nil
}

// windowKey возвращает ключ текущего окна и время до его конца
func windowKey(key string, now time.Time, window time.Duration) (string, time.Duration) {
	w := window.Nanoseconds()
	n := now.UnixNano()
	index := n / w
	remaining := time.Duration(w - n%w)
	return fmt.Sprintf("%s:%s:%d", keyPrefix, key, index), remaining
}
