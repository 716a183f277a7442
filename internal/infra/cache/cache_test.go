package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"saleslens/config"
	"saleslens/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testParams(t *testing.T, cfg *config.Config) Params {
	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNoopReportCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopReportCache()

	require.NoError(t, c.SetFacets(ctx, &entity.Facets{Regions: []string{"North"}}))
	facets, err := c.GetFacets(ctx)
	require.NoError(t, err)
	assert.Nil(t, facets)

	stats, err := c.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestNewReportCache_DisabledIsNoop(t *testing.T) {
	c, err := NewReportCache(testParams(t, &config.Config{}))
	require.NoError(t, err)
	assert.IsType(t, &noopReportCache{}, c)

	c, err = NewReportCache(testParams(t, &config.Config{Cache: &config.CacheConfig{Enabled: false, RedisURL: "redis://x"}}))
	require.NoError(t, err)
	assert.IsType(t, &noopReportCache{}, c)
}

func TestNewReportCache_InvalidURL(t *testing.T) {
	_, err := NewReportCache(testParams(t, &config.Config{Cache: &config.CacheConfig{Enabled: true, RedisURL: "http://not-redis"}}))
	assert.Error(t, err)
}

func TestRedisReportCache_Keys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	c := NewRedisReportCache(client, "saleslens:", time.Minute).(*redisReportCache)
	assert.Equal(t, "saleslens:report:facets", c.key(facetsKey))
	assert.Equal(t, "saleslens:report:statistics", c.key(statisticsKey))
}

func TestRedisReportCache_UnreachableServerReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()

	c := NewRedisReportCache(client, "t:", time.Minute)
	_, err := c.GetFacets(context.Background())
	assert.Error(t, err)
}
