package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"direct-transport-es/internal/config"
	"direct-transport-es/internal/http/middleware/ratelimit"
	"direct-transport-es/internal/logx"
)

// newRedisClient returns nil unless the redis limiter backend is selected.
func newRedisClient(cfg *config.Config) redis.UniversalClient {
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Backend != config.RateLimitRedis {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.SystemClock
}

type rateLimiterIn struct {
	dig.In

	Config *config.Config
	Clock  ratelimit.Clock
	Logger logx.Logger
	Redis  redis.UniversalClient `optional:"true"`
}

func newRateLimiter(in rateLimiterIn) ratelimit.Limiter {
	rl := in.Config.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	if rl.Backend == config.RateLimitRedis && in.Redis != nil {
		return ratelimit.NewRedisLimiter(in.Redis, int64(rl.Burst), rl.Window, in.Clock, in.Logger)
	}
	return ratelimit.NewMemoryLimiter(in.Clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

// liveness probes are never limited
var rateLimitExempt = []string{"/ping", "/healthcheck"}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter, rateLimitExempt...)
}
