// Package cache holds report cache implementations.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	facetsKey     = "report:facets"
	statisticsKey = "report:statistics"
)

type redisReportCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisReportCache creates a report cache on top of a Redis client
func NewRedisReportCache(client *redis.Client, prefix string, ttl time.Duration) service.ReportCache {
	return &redisReportCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *redisReportCache) GetFacets(ctx context.Context) (*entity.Facets, error) {
	var facets entity.Facets
	found, err := c.get(ctx, facetsKey, &facets)
	if err != nil || !found {
		return nil, err
	}

	return &facets, nil
}

func (c *redisReportCache) SetFacets(ctx context.Context, facets *entity.Facets) error {
	return c.set(ctx, facetsKey, facets)
}

func (c *redisReportCache) GetStatistics(ctx context.Context) (*entity.Statistics, error) {
	var stats entity.Statistics
	found, err := c.get(ctx, statisticsKey, &stats)
	if err != nil || !found {
		return nil, err
	}

	return &stats, nil
}

func (c *redisReportCache) SetStatistics(ctx context.Context, stats *entity.Statistics) error {
	return c.set(ctx, statisticsKey, stats)
}

func (c *redisReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key(facetsKey), c.key(statisticsKey)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate report cache")
	}

	return nil
}

func (c *redisReportCache) key(name string) string {
	return c.prefix + name
}

func (c *redisReportCache) get(ctx context.Context, name string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", name)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		// A stale or foreign payload is treated as a miss.
		return false, nil
	}

	return true, nil
}

func (c *redisReportCache) set(ctx context.Context, name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", name)
	}

	if err := c.client.Set(ctx, c.key(name), raw, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}

	return nil
}
