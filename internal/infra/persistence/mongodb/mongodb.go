// Package mongodb implements the record store on a MongoDB collection.
package mongodb

import (
	"context"
	"log/slog"

	"saleslens/config"
	"saleslens/internal/domain/lifecycle"
	"saleslens/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB collection handle and registers connect/disconnect hooks.
func New(params Params) (*mongo.Collection, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required for the mongo store driver")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetAppName(params.Config.Env.ServiceName)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	coll := client.Database(cfg.Database).Collection(cfg.Collection)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if params.Config.Store != nil && params.Config.Store.AutoMigrate {
				if err := EnsureIndexes(ctx, coll); err != nil {
					return err
				}
			}
			params.Logger.Info("MongoDB connected",
				slog.String("database", cfg.Database),
				slog.String("collection", cfg.Collection),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return coll, nil
}
