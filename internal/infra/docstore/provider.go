// Package docstore implements the document store gateway on Firestore, Redis and PostgreSQL.
package docstore

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"
	"marketplace/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the DocumentStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	// Nil when Firebase is not configured
	FirebaseApp *firebase.App `optional:"true"`
}

// NewDocumentStore creates the DocumentStore selected by docStore.provider
func NewDocumentStore(params Params) (repository.DocumentStore, error) {
	cfg := params.Config.DocStore
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("docStore.provider is required")
	}

	switch cfg.Provider {
	case constants.DocStoreProviderFirestore:
		return newFirestoreBackend(params)
	case constants.DocStoreProviderRedis:
		return newRedisBackend(params)
	case constants.DocStoreProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
			Models:    []any{&model.DocumentModel{}},
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL document store",
			slog.Duration("poll_interval", cfg.PollInterval),
		)

		return NewPostgresStore(db, cfg.PollInterval, logger), nil
	default:
		return nil, errors.Errorf("unknown docStore provider: %s", cfg.Provider)
	}
}

func newFirestoreBackend(params Params) (repository.DocumentStore, error) {
	if params.FirebaseApp == nil {
		return nil, errors.New("firebase must be configured for the firestore provider")
	}

	client, err := params.FirebaseApp.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})
	params.Logger.Info("Using Firestore document store")

	return NewFirestoreStore(client, params.Logger), nil
}

func newRedisBackend(params Params) (repository.DocumentStore, error) {
	redisCfg := params.Config.DocStore.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		return nil, errors.New("docStore.redis.addr is required for the redis provider")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Redis client")

			return client.Close()
		},
	})
	params.Logger.Info("Using Redis document store",
		slog.String("addr", redisCfg.Addr),
		slog.String("key_prefix", redisCfg.KeyPrefix),
	)

	return NewRedisStore(client, redisCfg.KeyPrefix, params.Logger), nil
}

// Module provides the DocumentStore FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDocumentStore),
)
