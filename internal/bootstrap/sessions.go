package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evently/evently-ui/config"
	"github.com/evently/evently-ui/internal/adapters/memory"
	"github.com/evently/evently-ui/internal/adapters/postgres"
	redisstore "github.com/evently/evently-ui/internal/adapters/redis"
	"github.com/evently/evently-ui/internal/ports"
)

// expiredDeleter is implemented by stores that need an external reaper.
// Redis expires keys itself and does not implement it.
type expiredDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionStoreResult bundles the chosen store with its lifecycle hooks.
type SessionStoreResult struct {
	Store ports.SessionStore
	// RunReaper blocks, purging expired sessions on an interval, until the
	// context is cancelled. Nil when the backend expires sessions itself.
	RunReaper func(ctx context.Context) error
	// Close releases the backing connection. Never nil.
	Close func()
}

// BuildSessionStore wires the session store selected by configuration.
func BuildSessionStore(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (SessionStoreResult, error) {
	switch cfg.Sessions.Backend {
	case config.SessionBackendRedis:
		client, err := ConnectRedis(DatabaseConfig{RedisConfig: cfg.Redis, Logger: logger})
		if err != nil {
			return SessionStoreResult{}, fmt.Errorf("connect redis: %w", err)
		}
		return SessionStoreResult{
			Store: redisstore.NewSessionStore(client),
			Close: func() { _ = client.Close() },
		}, nil

	case config.SessionBackendPostgres:
		pool, err := ConnectPostgres(ctx, DatabaseConfig{DBConfig: cfg.Postgres, Logger: logger})
		if err != nil {
			return SessionStoreResult{}, fmt.Errorf("connect postgres: %w", err)
		}
		store := postgres.NewSessionStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return SessionStoreResult{}, err
		}
		return SessionStoreResult{
			Store:     store,
			RunReaper: reaperLoop(store, cfg.Sessions.ReaperInterval, logger),
			Close:     pool.Close,
		}, nil

	case config.SessionBackendMemory:
		fallthrough
	default:
		store := memory.NewSessionStore()
		return SessionStoreResult{
			Store:     store,
			RunReaper: reaperLoop(store, cfg.Sessions.ReaperInterval, logger),
			Close:     func() {},
		}, nil
	}
}

// reaperLoop returns a blocking loop that purges expired sessions until
// the context is cancelled.
func reaperLoop(store expiredDeleter, interval time.Duration, logger *slog.Logger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				removed, err := store.DeleteExpired(ctx)
				if err != nil {
					if logger != nil {
						logger.ErrorContext(ctx, "session reaper failed", "error", err)
					}
					continue
				}
				if removed > 0 && logger != nil {
					logger.InfoContext(ctx, "expired sessions purged", "count", removed)
				}
			}
		}
	}
}
