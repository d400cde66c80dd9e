package port

import (
	"context"
	"time"
)

// RateLimiterPort - счетчик запросов в окне. allowed=false означает превышение лимита.
type RateLimiterPort interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
