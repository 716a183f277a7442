package service

import (
	"context"

	"saleslens/internal/domain/entity"
)

// ReportCache stores whole-collection reports between writes.
// Get methods return (nil, nil) on a miss.
type ReportCache interface {
	GetFacets(ctx context.Context) (*entity.Facets, error)
	SetFacets(ctx context.Context, facets *entity.Facets) error
	GetStatistics(ctx context.Context) (*entity.Statistics, error)
	SetStatistics(ctx context.Context, stats *entity.Statistics) error

	// Invalidate drops every cached report. Called after any write.
	Invalidate(ctx context.Context) error
}
