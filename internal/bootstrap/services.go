package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/linkly/linkly-ui/config"
	memorystore "github.com/linkly/linkly-ui/internal/adapters/memory"
	postgresstore "github.com/linkly/linkly-ui/internal/adapters/postgres"
	redisstore "github.com/linkly/linkly-ui/internal/adapters/redis"
	"github.com/linkly/linkly-ui/internal/adapters/shortener"
	"github.com/linkly/linkly-ui/internal/ports"
	"github.com/linkly/linkly-ui/internal/service"
)

// ServiceContainer holds the constructed services and the resources they
// hold open.
type ServiceContainer struct {
	Sessions *service.SessionService
	URLs     *service.URLService
	QR       *service.QRService
	Users    *service.UserService

	Storage ports.Storage
	API     ports.Client

	closers []io.Closer
}

// Close releases held connections in reverse construction order.
func (c *ServiceContainer) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// BuildServices constructs the session storage adapter, the API client, and
// every feature service.
func BuildServices(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*ServiceContainer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	container := &ServiceContainer{}

	storage, err := buildStorage(ctx, cfg, logger, container)
	if err != nil {
		return nil, err
	}
	container.Storage = storage

	api := shortener.New(shortener.Options{
		BaseURL: cfg.API.BaseURL,
		Storage: storage,
		Timeout: cfg.API.Timeout,
	})
	container.API = api

	container.Sessions = service.NewSessionService(service.SessionServiceOptions{
		Storage: storage,
		API:     api,
		Logger:  logger,
	})
	container.URLs = service.NewURLService(service.URLServiceOptions{
		API:    api,
		Logger: logger,
	})
	container.QR = service.NewQRService(service.QRServiceOptions{
		API:    api,
		Logger: logger,
	})
	container.Users = service.NewUserService(service.UserServiceOptions{
		API:    api,
		Logger: logger,
	})

	return container, nil
}

// buildStorage picks the session storage backend named by the configuration.
//
//nolint:ireturn // the backend is selected at runtime.
func buildStorage(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger, container *ServiceContainer) (ports.Storage, error) {
	dbCfg := DatabaseConfig{
		DBConfig:    cfg.Postgres,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	}

	switch cfg.StorageKind() {
	case config.StorageRedis:
		client, err := ConnectRedis(dbCfg)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		container.closers = append(container.closers, redisCloser{client})
		return redisstore.NewStorage(client), nil

	case config.StoragePostgres:
		db, err := ConnectDB(dbCfg)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		container.closers = append(container.closers, db)
		store := postgresstore.NewStorage(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure storage schema: %w", err)
		}
		return store, nil

	case config.StorageMemory:
		logger.Info("using in-memory session storage")
		return memorystore.NewStorage(), nil

	default:
		return nil, fmt.Errorf("unknown session storage backend %q", cfg.Storage)
	}
}

type redisCloser struct {
	client redis.UniversalClient
}

func (r redisCloser) Close() error { return r.client.Close() }
