package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"direct-transport-es/internal/config"
	"direct-transport-es/internal/logx"
	"direct-transport-es/internal/service/lifecycle"
	"direct-transport-es/internal/service/statusfeed"
	"direct-transport-es/internal/transport/kafka"
)

var (
	errNoConsumer         = errors.New("kafka consumer is nil: set KAFKA_BROKERS, KAFKA_GROUP_ID and KAFKA_STATUS_TOPIC")
	errStoreNotConfigured = errors.New("document store is not configured: set DATABASE_URL")
)

// WorkerRunner runs the carrier status worker.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes status events until the container context is cancelled.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type processorIn struct {
	dig.In

	Service *lifecycle.Service
	Logger  logx.Logger
	Events  *prometheus.CounterVec `name:"status_events_total"`
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(in processorIn) *statusfeed.Processor {
			return statusfeed.NewProcessor(in.Service, in.Logger, in.Events)
		},
		func(cfg *config.Config, logger logx.Logger, p *statusfeed.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.StatusTopic, makeStatusHandler(p))
		},
		newDebugServer,
	)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		return workerRun(in.Ctx, in.Logger, in.Consumer, in.Store, in.Debug)
	})
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Store    *storeHandle
	Debug    *http.Server `name:"debug_server" optional:"true"`
}

func workerRun(
	ctx context.Context,
	logger logx.Logger,
	consumer *kafka.Consumer,
	store *storeHandle,
	debug *http.Server,
) error {
	// offline store would fail every event as transient and stall the partition
	if !store.Info().Configured {
		closeResources(store, nil, logger)
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logger.Error("kafka close error", logx.Err(err))
			}
		}
		return errStoreNotConfigured
	}
	if consumer == nil {
		closeResources(store, nil, logger)
		return errNoConsumer
	}
	defer closeWorker(logger, consumer, store, debug)

	if debug != nil {
		startServer(debug, logger, make(chan error, 1))
	}

	logger.Info("status-worker started")
	return consumer.Run(ctx)
}

func closeWorker(logger logx.Logger, consumer *kafka.Consumer, store *storeHandle, debug *http.Server) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if debug != nil {
		gracefulShutdown(debug, logger, shutdownTimeout)
	}
	closeResources(store, nil, logger)
}
