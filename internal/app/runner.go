package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"direct-transport-es/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP servers of container and blocks until shutdown.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Info("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Logger logx.Logger
	Server *http.Server
	Debug  *http.Server          `name:"debug_server" optional:"true"`
	Store  *storeHandle
	Redis  redis.UniversalClient `optional:"true"`
}

func appRun(in runIn) error {
	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, errCh)
	if in.Debug != nil {
		startServer(in.Debug, in.Logger, errCh)
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down transport-api")
		runErr = in.Ctx.Err()
	case runErr = <-errCh:
		in.Logger.Error("server stopped", logx.Err(runErr))
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Debug != nil {
		gracefulShutdown(in.Debug, in.Logger, shutdownTimeout)
	}
	closeResources(in.Store, in.Redis, in.Logger)
	return runErr
}

func startServer(server *http.Server, logger logx.Logger, errCh chan<- error) {
	go func() {
		logger.Info("http server listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(store *storeHandle, rdb redis.UniversalClient, logger logx.Logger) {
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", logx.Err(err))
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		logger.Error("store close error", logx.Err(err))
	}
}
