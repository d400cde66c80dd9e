package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type HealthChecker struct {
	client redis.Cmdable
}

func NewHealthChecker(client redis.Cmdable) *HealthChecker {
	return &HealthChecker{client: client}
}

func (h *HealthChecker) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
