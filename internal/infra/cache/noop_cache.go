package cache

import (
	"context"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/service"
)

// noopReportCache always misses. Used when caching is disabled.
type noopReportCache struct{}

// NewNoopReportCache creates a cache that stores nothing
func NewNoopReportCache() service.ReportCache {
	return &noopReportCache{}
}

func (c *noopReportCache) GetFacets(_ context.Context) (*entity.Facets, error) { return nil, nil }

func (c *noopReportCache) SetFacets(_ context.Context, _ *entity.Facets) error { return nil }

func (c *noopReportCache) GetStatistics(_ context.Context) (*entity.Statistics, error) {
	return nil, nil
}

func (c *noopReportCache) SetStatistics(_ context.Context, _ *entity.Statistics) error { return nil }

func (c *noopReportCache) Invalidate(_ context.Context) error { return nil }
