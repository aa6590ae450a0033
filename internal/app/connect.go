package app

import (
	"context"
	"fmt"
	"time"

	"direct-transport-es/internal/logx"
)

const connectAttemptTimeout = 3 * time.Second

// connectWithRetry calls dial until it succeeds, retries are exhausted or ctx ends.
func connectWithRetry[T any](
	ctx context.Context,
	logger logx.Logger,
	name string,
	retries int,
	delay time.Duration,
	dial func(context.Context) (T, error),
) (T, error) {
	var zero T
	var lastErr error
	for i := 1; i <= retries; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, connectAttemptTimeout)
		conn, err := dial(attemptCtx)
		cancel()
		if err == nil {
			logger.Info("store connected", logx.String("driver", name), logx.Int("attempt", i))
			return conn, nil
		}
		lastErr = err
		logger.Warn("store connect failed",
			logx.String("driver", name),
			logx.Int("attempt", i),
			logx.Int("retries", retries),
			logx.Err(err),
		)
		if i < retries {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return zero, fmt.Errorf("%s connect failed after %d attempts: %w", name, retries, lastErr)
}
