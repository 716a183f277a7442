package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"saleslens/config"
	deliverycontext "saleslens/internal/delivery/context"
	"saleslens/internal/domain/constants"
	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/normalizer"
	"saleslens/internal/domain/repository"
	"saleslens/internal/domain/service"
	"saleslens/internal/errors"
	"saleslens/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type importService struct {
	salesRepo     repository.SalesRepository
	normalizer    *normalizer.Normalizer
	opener        service.SourceOpener
	publisher     service.EventPublisher
	cache         service.ReportCache
	observer      service.ImportObserver
	logger        *slog.Logger
	batchSize     int
	progressEvery int
	now           func() time.Time
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	SalesRepo  repository.SalesRepository
	Normalizer *normalizer.Normalizer
	Opener     service.SourceOpener
	Publisher  service.EventPublisher
	Cache      service.ReportCache
	Observer   service.ImportObserver `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	batchSize, progressEvery := constants.DefaultImportBatchSize, constants.DefaultImportProgressEvery
	if params.Config != nil && params.Config.Import != nil {
		if params.Config.Import.BatchSize > 0 {
			batchSize = params.Config.Import.BatchSize
		}
		if params.Config.Import.ProgressEvery > 0 {
			progressEvery = params.Config.Import.ProgressEvery
		}
	}

	var observer service.ImportObserver = nopObserver{}
	if params.Observer != nil {
		observer = params.Observer
	}

	return &importService{
		salesRepo:     params.SalesRepo,
		normalizer:    params.Normalizer,
		opener:        params.Opener,
		publisher:     params.Publisher,
		cache:         params.Cache,
		observer:      observer,
		logger:        params.Logger,
		batchSize:     batchSize,
		progressEvery: progressEvery,
		now:           time.Now,
	}
}

func (s *importService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ImportLocation opens a path or blob URL and imports it
func (s *importService) ImportLocation(ctx context.Context, location string) (*entity.ImportSummary, error) {
	source, err := s.opener.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	return s.Import(ctx, location, source)
}

// ImportUpload imports an uploaded file
func (s *importService) ImportUpload(ctx context.Context, filename string, r io.Reader) (*entity.ImportSummary, error) {
	source, err := s.opener.FromReader(ctx, filename, r)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	return s.Import(ctx, filename, source)
}

// RequestImport publishes an import request for the worker to pick up
func (s *importService) RequestImport(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return domainerrors.NewValidationError(map[string]string{"location": "is required"})
	}

	event := &service.ImportRequestedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Location:  location,
	}
	if err := s.publisher.PublishImportRequested(ctx, event); err != nil {
		return domainerrors.ErrImportQueueFailed.WithDetails(err.Error())
	}

	s.getLogger(ctx).Info("Import requested", slog.String("location", location))

	return nil
}

// Import streams rows from source, normalizes them and writes them in batches.
// Duplicate rejections are counted and skipped; any other write failure aborts.
func (s *importService) Import(ctx context.Context, name string, source service.RowSource) (*entity.ImportSummary, error) {
	logger := s.getLogger(ctx).With(slog.String("source", name))
	started := s.now()
	summary := &entity.ImportSummary{Source: name}
	batch := make([]*entity.SalesRecord, 0, s.batchSize)

	logger.Info("Import started", slog.Int("batch_size", s.batchSize))

	err := s.consume(ctx, logger, source, summary, &batch)
	if err == nil && len(batch) > 0 {
		err = s.flush(ctx, logger, batch, summary)
	}
	summary.Duration = s.now().Sub(started)

	if summary.InsertedCount > 0 {
		if cacheErr := s.cache.Invalidate(ctx); cacheErr != nil {
			logger.Warn("Failed to invalidate report cache", slog.Any("error", cacheErr))
		}
	}
	s.publishCompleted(ctx, logger, summary, err)
	s.observer.ObserveImport(summary, err != nil)

	if err != nil {
		logger.Error("Import aborted", append(summaryAttrs(summary), slog.Any("error", err))...)

		return nil, err
	}

	logger.Info("Import completed", summaryAttrs(summary)...)
	s.logCollectionStats(ctx, logger)

	return summary, nil
}

// consume reads the whole source, flushing every full batch
func (s *importService) consume(
	ctx context.Context,
	logger *slog.Logger,
	source service.RowSource,
	summary *entity.ImportSummary,
	batch *[]*entity.SalesRecord,
) error {
	for {
		row, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			var parseErr *service.RowParseError
			if !errors.As(err, &parseErr) {
				return domainerrors.ErrInvalidImportSource.WithDetails(err.Error())
			}
			summary.TotalRows++
			summary.ErrorRows++
			logger.Warn("Skipping unreadable row", slog.Int("line", parseErr.Line), slog.Any("error", parseErr.Err))
		} else {
			summary.TotalRows++
			s.normalizeRow(logger, row, summary, batch)
		}

		if summary.TotalRows%s.progressEvery == 0 {
			logger.Info("Import progress",
				slog.Int("processed_rows", summary.TotalRows),
				slog.Int("inserted", summary.InsertedCount),
				slog.Int("errors", summary.ErrorRows),
			)
		}

		if len(*batch) >= s.batchSize {
			if err := s.flush(ctx, logger, *batch, summary); err != nil {
				return err
			}
			*batch = (*batch)[:0]
		}
	}
}

func (s *importService) normalizeRow(
	logger *slog.Logger,
	row entity.RawRow,
	summary *entity.ImportSummary,
	batch *[]*entity.SalesRecord,
) {
	record, warnings, err := s.normalizer.Normalize(row)
	if err != nil {
		summary.ErrorRows++
		logger.Warn("Skipping invalid row", slog.Int("row", summary.TotalRows), slog.Any("error", err))

		return
	}

	summary.SuccessRows++
	if len(warnings) > 0 {
		summary.WarningRows++
		logger.Debug("Row parsed with warnings", slog.Int("row", summary.TotalRows), slog.Any("warnings", warnings))
	}

	now := s.now().UTC()
	record.ID = uuid.Must(uuid.NewV7())
	record.CreatedAt = now
	record.UpdatedAt = now
	*batch = append(*batch, record)
}

// flush writes one batch and folds the per-record outcomes into summary
func (s *importService) flush(ctx context.Context, logger *slog.Logger, batch []*entity.SalesRecord, summary *entity.ImportSummary) error {
	batchIndex := summary.Batches
	summary.Batches++

	outcomes, err := s.salesRepo.InsertMany(ctx, batch)
	if err != nil {
		return domainerrors.NewBatchWriteError(err, batchIndex, "")
	}
	if len(outcomes) != len(batch) {
		return domainerrors.NewBatchWriteError(
			errors.Errorf("store returned %d outcomes for %d records", len(outcomes), len(batch)),
			batchIndex,
			string(repository.ReasonOther),
		)
	}

	var fatal *repository.InsertOutcome
	duplicates := 0
	for i := range outcomes {
		outcome := &outcomes[i]
		switch {
		case outcome.Status == repository.Inserted:
			summary.InsertedCount++
		case outcome.Reason == repository.ReasonDuplicate:
			summary.DuplicateRows++
			duplicates++
		case fatal == nil:
			fatal = outcome
		}
	}

	if duplicates > 0 {
		logger.Warn("Skipped duplicate records in batch", slog.Int("batch", batchIndex), slog.Int("duplicates", duplicates))
	}
	if fatal != nil {
		return domainerrors.NewBatchWriteError(
			errors.Errorf("record %s rejected: %s", fatal.RecordID, fatal.Detail),
			batchIndex,
			string(fatal.Reason),
		)
	}

	logger.Info("Batch written",
		slog.Int("batch", batchIndex),
		slog.Int("inserted_total", summary.InsertedCount),
		slog.Int("normalized_total", summary.SuccessRows),
	)

	return nil
}

func (s *importService) publishCompleted(ctx context.Context, logger *slog.Logger, summary *entity.ImportSummary, importErr error) {
	event := &service.ImportCompletedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Source:        summary.Source,
		TotalRows:     summary.TotalRows,
		SuccessRows:   summary.SuccessRows,
		ErrorRows:     summary.ErrorRows,
		InsertedCount: summary.InsertedCount,
		DuplicateRows: summary.DuplicateRows,
		Failed:        importErr != nil,
		FinishedAt:    s.now().UTC(),
	}
	if importErr != nil {
		event.Error = importErr.Error()
	}

	if err := s.publisher.PublishImportCompleted(ctx, event); err != nil {
		logger.Warn("Failed to publish import completed event", slog.Any("error", err))
	}
}

// logCollectionStats reports collection totals after an import
func (s *importService) logCollectionStats(ctx context.Context, logger *slog.Logger) {
	stats, err := s.salesRepo.Summarize(ctx)
	if err != nil {
		logger.Warn("Failed to read collection statistics", slog.Any("error", err))

		return
	}
	if stats == nil || stats.TotalTransactions == 0 {
		return
	}

	logger.Info("Collection statistics",
		slog.Int64("total_records", stats.TotalTransactions),
		slog.Float64("total_sales", stats.TotalSales),
		slog.Float64("average_order_value", stats.AverageOrderValue),
	)
}

func summaryAttrs(summary *entity.ImportSummary) []any {
	return []any{
		slog.Int("total_rows", summary.TotalRows),
		slog.Int("success_rows", summary.SuccessRows),
		slog.Int("error_rows", summary.ErrorRows),
		slog.Int("warning_rows", summary.WarningRows),
		slog.Int("inserted", summary.InsertedCount),
		slog.Int("duplicates", summary.DuplicateRows),
		slog.Int("batches", summary.Batches),
		slog.Duration("duration", summary.Duration),
	}
}

type nopObserver struct{}

func (nopObserver) ObserveImport(*entity.ImportSummary, bool) {}
