package usecase

import (
	"context"

	"saleslens/internal/domain/entity"
)

// ReportUsecase defines whole-collection aggregation use cases
type ReportUsecase interface {
	// Facets returns sorted distinct values for each filterable categorical field
	Facets(ctx context.Context) (*entity.Facets, error)

	// Statistics returns totals and averages; all zero on an empty collection
	Statistics(ctx context.Context) (*entity.Statistics, error)
}
