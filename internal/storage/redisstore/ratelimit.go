package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:"

// FixedWindowLimiter counts hits per key in windows of a fixed length.
type FixedWindowLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

// DefaultWindow replaces non-positive windows.
const DefaultWindow = time.Minute

// NewFixedWindowLimiter allows limit hits per key in each window.
func NewFixedWindowLimiter(client redis.Cmdable, limit int, window time.Duration) *FixedWindowLimiter {
	if window <= 0 {
		window = DefaultWindow
	}
	return &FixedWindowLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := fmt.Sprintf("%s%s:%d", rateLimitPrefix, key, time.Now().UnixNano()/int64(l.window))

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record rate limit hit: %w", err)
	}
	return incr.Val() <= l.limit, nil
}
