package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"direct-transport-es/internal/logx"
)

// RedisLimiter is a fixed-window counter shared by every API replica.
type RedisLimiter struct {
	c      redis.UniversalClient
	limit  int64
	window time.Duration
	prefix string
	clock  Clock
	logger logx.Logger
}

// NewRedisLimiter allows limit requests per key in every window.
func NewRedisLimiter(c redis.UniversalClient, limit int64, window time.Duration, clock Clock, logger logx.Logger) *RedisLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Second
	}
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RedisLimiter{c: c, limit: limit, window: window, prefix: "rl:", clock: clock, logger: logger}
}

// Allow counts the request and reports whether the window still has room.
// Redis failures let the request through.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	ok, _, err := l.allow(ctx, key)
	if err != nil {
		l.logger.Warn("rate limiter unavailable, allowing request",
			logx.String("key", key),
			logx.Err(err),
		)
		return true
	}
	return ok
}

// allow does INCR on the window key and refreshes its TTL.
func (l *RedisLimiter) allow(ctx context.Context, key string) (bool, int64, error) {
	slot := l.clock.Now().UnixNano() / int64(l.window)
	k := l.prefix + key + ":" + strconv.FormatInt(slot, 10)

	pipe := l.c.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, errors.Wrap(err, "redis ratelimit")
	}
	n := incr.Val()
	return n <= l.limit, n, nil
}
