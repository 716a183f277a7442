// Package persistence selects the record store backend.
package persistence

import (
	"context"
	"log/slog"
	"strings"

	"saleslens/config"
	"saleslens/internal/domain/constants"
	"saleslens/internal/domain/lifecycle"
	"saleslens/internal/domain/repository"
	"saleslens/internal/errors"
	"saleslens/internal/infra/metrics"
	"saleslens/internal/infra/persistence/memory"
	"saleslens/internal/infra/persistence/mongodb"
	"saleslens/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewSalesRepository builds the repository for the configured store driver
func NewSalesRepository(params Params) (repository.SalesRepository, error) {
	driver := constants.StoreDriverPostgres
	autoMigrate := false
	if params.Config.Store != nil {
		driver = strings.ToLower(strings.TrimSpace(params.Config.Store.Driver))
		autoMigrate = params.Config.Store.AutoMigrate
	}

	logger := params.Logger.With(slog.String("store_driver", driver))

	switch driver {
	case constants.StoreDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for the postgres store driver")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
			Metrics:   params.Metrics,
		})
		if err != nil {
			return nil, err
		}
		if autoMigrate {
			params.Append(fx.Hook{
				OnStart: func(startCtx context.Context) error {
					ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
					defer cancel()

					return postgres.Migrate(ctx, db)
				},
			})
		}
		logger.Info("Using PostgreSQL sales store")

		return postgres.NewSalesRepository(db), nil

	case constants.StoreDriverMongo:
		coll, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB sales store")

		return mongodb.NewSalesRepository(coll), nil

	case constants.StoreDriverMemory:
		logger.Warn("Using in-memory sales store, data is lost on restart")

		return memory.NewSalesRepository(), nil

	default:
		return nil, errors.Errorf("unknown store driver %q", driver)
	}
}
