package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qalab/employee-directory/internal/api/handler"
	"github.com/qalab/employee-directory/internal/core/ports"
	"github.com/qalab/employee-directory/internal/infrastructure/db/mongo"
	"github.com/qalab/employee-directory/internal/infrastructure/db/redis"
	"github.com/qalab/employee-directory/internal/infrastructure/session"
	"github.com/qalab/employee-directory/internal/infrastructure/store/jsonfile"
	"github.com/qalab/employee-directory/internal/pkg/config"
)

// backends holds the storage collaborators chosen by configuration.
type backends struct {
	employees ports.EmployeeRepository
	sessions  ports.SessionStore
	checkers  []handler.Checker
	closers   []func(context.Context) error
}

func (b *backends) Close(ctx context.Context, log zerolog.Logger) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			log.Error().Err(err).Msg("close backend")
		}
	}
}

// openEmployeeStore connects the employee repository selected by STORE_BACKEND.
func openEmployeeStore(ctx context.Context, cfg *config.Config, b *backends, log zerolog.Logger) error {
	switch cfg.StoreBackend {
	case config.StoreBackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, client.Disconnect)

		repo := mongo.NewEmployeeRepository(db, cfg.Mongo.Collection)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("mongo indexes: %w", err)
		}
		b.employees = repo
		b.checkers = append(b.checkers, mongo.NewHealthCheck(client))
		log.Info().Str("database", cfg.Mongo.Database).Str("collection", cfg.Mongo.Collection).Msg("employee store: mongo")
	default:
		repo := jsonfile.NewEmployeeRepository(cfg.DataFile)
		b.employees = repo
		b.checkers = append(b.checkers, repo)
		log.Info().Str("path", repo.Path()).Msg("employee store: json file")
	}
	return nil
}

// openSessionStore builds the session store selected by SESSION_BACKEND.
func openSessionStore(ctx context.Context, cfg *config.Config, b *backends, log zerolog.Logger) error {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
		b.sessions = redis.NewSessionStore(client, cfg.Session.TTL, cfg.Session.RememberTTL)
		b.checkers = append(b.checkers, redis.NewHealthCheck(client))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session store: redis")
	default:
		b.sessions = session.NewMemoryStore(cfg.Session.TTL, cfg.Session.RememberTTL)
		log.Info().Msg("session store: memory")
	}
	return nil
}
