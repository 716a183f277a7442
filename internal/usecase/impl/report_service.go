package impl

import (
	"context"
	"log/slog"
	"slices"

	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/query"
	"saleslens/internal/domain/repository"
	"saleslens/internal/domain/service"
	"saleslens/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type reportService struct {
	salesRepo repository.SalesRepository
	cache     service.ReportCache
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	SalesRepo repository.SalesRepository
	Cache     service.ReportCache
	Logger    *slog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		salesRepo: params.SalesRepo,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

// Facets collects the distinct values of every categorical filter field
func (s *reportService) Facets(ctx context.Context) (*entity.Facets, error) {
	if cached, err := s.cache.GetFacets(ctx); err != nil {
		s.logger.Warn("Failed to read cached facets", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	facets := &entity.Facets{}
	targets := []struct {
		field query.Field
		dst   *[]string
	}{
		{query.FieldCustomerRegion, &facets.Regions},
		{query.FieldGender, &facets.Genders},
		{query.FieldProductCategory, &facets.Categories},
		{query.FieldPaymentMethod, &facets.PaymentMethods},
		{query.FieldTags, &facets.Tags},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		g.Go(func() error {
			values, err := s.salesRepo.Distinct(gctx, target.field)
			if err != nil {
				return err
			}
			*target.dst = cleanFacet(values)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domainerrors.NewQueryExecutionError(err, "fetch filter options")
	}

	if err := s.cache.SetFacets(ctx, facets); err != nil {
		s.logger.Warn("Failed to cache facets", slog.Any("error", err))
	}

	return facets, nil
}

// Statistics aggregates totals over the whole collection
func (s *reportService) Statistics(ctx context.Context) (*entity.Statistics, error) {
	if cached, err := s.cache.GetStatistics(ctx); err != nil {
		s.logger.Warn("Failed to read cached statistics", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	stats, err := s.salesRepo.Summarize(ctx)
	if err != nil {
		return nil, domainerrors.NewQueryExecutionError(err, "fetch statistics")
	}
	if stats == nil || stats.TotalTransactions == 0 {
		stats = &entity.Statistics{}
	}

	if err := s.cache.SetStatistics(ctx, stats); err != nil {
		s.logger.Warn("Failed to cache statistics", slog.Any("error", err))
	}

	return stats, nil
}

// cleanFacet drops empty values, sorts and deduplicates
func cleanFacet(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}
