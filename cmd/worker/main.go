package main

import (
	"context"
	"log/slog"
	"os"

	"saleslens/config"
	"saleslens/internal/delivery"
	"saleslens/internal/delivery/worker"
	"saleslens/internal/delivery/worker/handler"
	"saleslens/internal/domain/normalizer"
	"saleslens/internal/domain/service"
	"saleslens/internal/infra/cache"
	logs "saleslens/internal/infra/log"
	"saleslens/internal/infra/metrics"
	"saleslens/internal/infra/persistence"
	"saleslens/internal/infra/pubsub"
	"saleslens/internal/infra/source"
	"saleslens/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.ImportObserver)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewSalesRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			normalizer.Default,
			source.NewOpener,
			cache.NewReportCache,
			impl.NewImportService,
		),
		pubsub.Module,
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
