package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"saleslens/config"
	"saleslens/internal/domain/normalizer"
	"saleslens/internal/infra/cache"
	logs "saleslens/internal/infra/log"
	"saleslens/internal/infra/persistence"
	"saleslens/internal/infra/pubsub"
	"saleslens/internal/infra/source"
	"saleslens/internal/usecase"
	"saleslens/internal/usecase/impl"
	"saleslens/internal/util"

	"go.uber.org/fx"
)

// importJob names the file or blob URL to load
type importJob struct {
	Location string
}

type runImportParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Job      importJob
	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

func main() {
	location := flag.String("source", "", "CSV/XLSX file path or blob URL (file://, gs://, s3://)")
	flag.Parse()

	if *location == "" && flag.NArg() > 0 {
		*location = flag.Arg(0)
	}
	if strings.TrimSpace(*location) == "" {
		fmt.Fprintln(os.Stderr, "Usage: importer -source <path|url>")
		os.Exit(2)
	}

	fx.New(
		fx.Supply(importJob{Location: *location}),
		injectInfra(),
		injectRepo(),
		injectService(),
		fx.Invoke(
			runImport,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
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

func runImport(ctx context.Context, params runImportParams) {
	runCtx, cancel := context.WithCancel(ctx)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := importLocation(runCtx, params)

				if err := params.Shutdown(fx.ExitCode(code)); err != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func importLocation(ctx context.Context, params runImportParams) int {
	logger := params.Logger.With(slog.String("location", params.Job.Location))

	if path, ok := localPath(params.Job.Location); ok {
		checksum, size, err := util.FileFingerprint(path)
		if err != nil {
			logger.Error("Failed to read import file", slog.Any("error", err))

			return 1
		}
		logger.Info("Import file",
			slog.String("sha256", checksum),
			slog.String("size", util.FormatBytes(size)),
		)
	}

	summary, err := params.ImportUC.ImportLocation(ctx, params.Job.Location)
	if err != nil {
		logger.Error("Import failed", slog.Any("error", err))

		return 1
	}

	logger.Info("Import finished",
		slog.Int("total_rows", summary.TotalRows),
		slog.Int("inserted", summary.InsertedCount),
		slog.Int("duplicates", summary.DuplicateRows),
		slog.Int("errors", summary.ErrorRows),
		slog.String("took", util.FormatDuration(summary.Duration)),
	)

	return 0
}

// localPath reports whether location points at the local filesystem
func localPath(location string) (string, bool) {
	if after, ok := strings.CutPrefix(location, "file://"); ok {
		return after, true
	}

	return location, !strings.Contains(location, "://")
}
