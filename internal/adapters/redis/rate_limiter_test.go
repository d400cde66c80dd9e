package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowKey(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 45, 0, time.UTC)

	key, remaining := windowKey("search:10.0.0.1", now, time.Minute)

	assert.True(t, strings.HasPrefix(key, "ratelimit:search:10.0.0.1:"))
	assert.Equal(t, 15*time.Second, remaining)

	sameWindow, _ := windowKey("search:10.0.0.1", now.Add(10*time.Second), time.Minute)
	assert.Equal(t, key, sameWindow)

	nextWindow, remaining := windowKey("search:10.0.0.1", now.Add(15*time.Second), time.Minute)
	assert.NotEqual(t, key, nextWindow)
	assert.Equal(t, time.Minute, remaining)
}

func TestNewRateLimiter_Validation(t *testing.T) {
	_, err := NewRateLimiter(nil, 10, time.Minute)
	assert.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	_, err = NewRateLimiter(client, 0, time.Minute)
	assert.Error(t, err)
	_, err = NewRateLimiter(client, 10, 0)
	assert.Error(t, err)
}

func TestRateLimiter_UnreachableRedisReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter, err := NewRateLimiter(client, 10, time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	allowed, _, err := limiter.Allow(ctx, "search:10.0.0.1")
	assert.Error(t, err)
	assert.False(t, allowed)
}
