package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"

	"direct-transport-es/internal/config"
	"direct-transport-es/internal/domain"
	"direct-transport-es/internal/logx"
	"direct-transport-es/internal/repository/mongostore"
	"direct-transport-es/internal/repository/offline"
	"direct-transport-es/internal/repository/pgstore"
	"direct-transport-es/internal/service/lifecycle"
)

// storeHandle owns the document store for the lifetime of the process.
type storeHandle struct {
	lifecycle.Store
	close func(context.Context) error
}

// Close releases the underlying client. It is safe on the offline store.
func (h *storeHandle) Close(ctx context.Context) error {
	if h == nil || h.close == nil {
		return nil
	}
	return h.close(ctx)
}

type storeOpener func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*storeHandle, error)

var (
	dialMongo    = mongostore.Connect
	dialPostgres = pgstore.NewPool
	ensureSchema = pgstore.EnsureSchema
)

func openStore(ctx context.Context, cfg *config.Config, logger logx.Logger) (*storeHandle, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return openMongo(ctx, cfg, logger)
	}
}

func openMongo(ctx context.Context, cfg *config.Config, logger logx.Logger) (*storeHandle, error) {
	if cfg.Store.URL == "" {
		logger.Warn("DATABASE_URL not set, data endpoints will answer 503")
		return &storeHandle{Store: offline.New()}, nil
	}

	client, err := connectWithRetry(ctx, logger, config.DriverMongo, cfg.Store.ConnectRetries, cfg.Store.ConnectDelay,
		func(ctx context.Context) (*mongo.Client, error) {
			return dialMongo(ctx, cfg.Store.URL)
		})
	if err != nil {
		return nil, err
	}

	name := cfg.Store.Database
	if name == "" {
		name = mongostore.DefaultDatabase
	}
	info := domain.StoreInfo{URLSet: true, DatabaseName: cfg.Store.Database}
	return &storeHandle{
		Store: mongostore.New(client.Database(name), info),
		close: client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, logger logx.Logger) (*storeHandle, error) {
	dsn := cfg.PostgresDSN()
	pool, err := connectWithRetry(ctx, logger, config.DriverPostgres, cfg.Store.ConnectRetries, cfg.Store.ConnectDelay,
		func(ctx context.Context) (*pgxpool.Pool, error) {
			return dialPostgres(ctx, dsn)
		})
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	info := domain.StoreInfo{DatabaseName: cfg.DB.Name}
	if cfg.Store.URL != "" {
		info = domain.StoreInfo{URLSet: true, DatabaseName: cfg.Store.Database}
	}
	return &storeHandle{
		Store: pgstore.New(pool, info),
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}
