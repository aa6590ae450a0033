package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"direct-transport-es/internal/config"
	"direct-transport-es/internal/http/debugserver"
	"direct-transport-es/internal/http/handlers"
	"direct-transport-es/internal/http/middleware/ratelimit"
	"direct-transport-es/internal/http/router"
	"direct-transport-es/internal/logx"
	"direct-transport-es/internal/metrics"
	"direct-transport-es/internal/service/lifecycle"
	"direct-transport-es/internal/validation"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	service    string
	loadConfig func() (*config.Config, error)
	newLogger  func(string) logx.Logger
	openStore  storeOpener
	logFatalf  func(string, ...any)
}

// NewContainerBuilder returns a builder for the named process.
func NewContainerBuilder(service string) *ContainerBuilder {
	return &ContainerBuilder{
		service:    service,
		loadConfig: config.Load,
		newLogger:  NewLogger,
		openStore:  openStore,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig skips environment loading and uses cfg.
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithLogger sets the process logger.
func (b *ContainerBuilder) WithLogger(logger logx.Logger) *ContainerBuilder {
	if logger != nil {
		b.newLogger = func(string) logx.Logger { return logger }
	}
	return b
}

// WithStoreOpener replaces the document store constructor.
func (b *ContainerBuilder) WithStoreOpener(fn storeOpener) *ContainerBuilder {
	if fn != nil {
		b.openStore = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...any)) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the API container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	return b.must(b.build(ctx))
}

// MustBuildWorker builds the status worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	return b.must(b.buildWorker(ctx))
}

func (b *ContainerBuilder) must(container *dig.Container, err error) *dig.Container {
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) base(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig, b.newLogger(b.service)); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStore(container, b.openStore); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the API container from the environment.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder("transport-api").MustBuild(ctx)
}

// MustBuildWorkerContainer builds the status worker container from the environment.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder("status-worker").MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(
	container *dig.Container,
	ctx context.Context,
	loadConfig func() (*config.Config, error),
	logger logx.Logger,
) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() logx.Logger { return logger },
		loadConfig,
		provideMetrics,
		validation.New,
	)
}

func registerStore(container *dig.Container, open storeOpener) error {
	return provideAll(container,
		func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*storeHandle, error) {
			return open(ctx, cfg, logger)
		},
		func(h *storeHandle) lifecycle.Store { return h.Store },
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(store lifecycle.Store, v *validation.Validator, cfg *config.Config, logger logx.Logger) *lifecycle.Service {
			return lifecycle.NewService(store, v, cfg.OperationTimeout, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.NewDiagnoser,
		handlers.New,
		handlers.NewUserUsecase,
		handlers.NewUserHandler,
		handlers.NewRequestUsecase,
		handlers.NewRequestHandler,
		handlers.NewBookingUsecase,
		handlers.NewBookingHandler,
		handlers.NewStructValidator,
		handlers.NewLinkHandler,
		newRedisClient,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouterOptions,
		newEndpoints,
		router.New,
		newMainServer,
		newDebugServer,
	)
}

func newRouterOptions(cfg *config.Config, logger logx.Logger, m *metrics.HTTP, rl *ratelimit.Middleware) router.Options {
	return router.Options{
		Logger:    logger,
		Metrics:   m,
		RateLimit: rl.Handler(),
		Timeout:   cfg.OperationTimeout + 2*time.Second,
	}
}

func newEndpoints(
	users *handlers.UserHandler,
	requests *handlers.RequestHandler,
	bookings *handlers.BookingHandler,
	links *handlers.LinkHandler,
) router.Endpoints {
	return router.Endpoints{Users: users, Requests: requests, Bookings: bookings, Links: links}
}

func newMainServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

type debugServerOut struct {
	dig.Out

	Server *http.Server `name:"debug_server"`
}

// newDebugServer returns a nil server when the debug endpoint is disabled.
func newDebugServer(cfg *config.Config, gatherer prometheus.Gatherer) debugServerOut {
	if !cfg.Debug.Enabled {
		return debugServerOut{}
	}
	return debugServerOut{Server: &http.Server{
		Addr:              cfg.Debug.Addr,
		Handler:           debugserver.Handler(debugserver.Config{User: cfg.Debug.User, Pass: cfg.Debug.Pass}, gatherer),
		ReadHeaderTimeout: 5 * time.Second,
		// profile and trace stream for up to 30s by default
		WriteTimeout: 60 * time.Second,
	}}
}
