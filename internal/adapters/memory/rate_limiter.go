package memory

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter - фиксированное окно в памяти процесса.
// Истекшие окна вычищаются не чаще раза за окно, внутри Allow.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	windows   map[string]*window
	now       func() time.Time
	lastSweep time.Time
}

func NewRateLimiter(limit int, windowSize time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  windowSize,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.window {
		for k, w := range r.windows {
			if !now.Before(w.resetAt) {
				delete(r.windows, k)
			}
		}
		r.lastSweep = now
	}

	w, ok := r.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(r.window)}
		r.windows[key] = w
	}

	w.count++
	if w.count > r.limit {
		return false, w.resetAt.Sub(now), nil
	}
	return true, 0, nil
}

func (r *RateLimiter) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.windows)
}
