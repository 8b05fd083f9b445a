package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplylens/supplylens/internal/config"
	"github.com/supplylens/supplylens/internal/forecast"
)

func TestBuildRedisOptions_FromURL(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{RedisURL: "redis://:secret@example.com:6380/2"})
	require.NoError(t, err)

	assert.Equal(t, "example.com:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestBuildRedisOptions_InvalidURL(t *testing.T) {
	_, err := buildRedisOptions(config.CacheConfig{RedisURL: "://bad"})
	assert.Error(t, err)
}

func TestBuildRedisOptions_HostPortFallback(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)

	opts, err = buildRedisOptions(config.CacheConfig{RedisHost: "cache", RedisPort: "7000", RedisDB: 1})
	require.NoError(t, err)
	assert.Equal(t, "cache:7000", opts.Addr)
	assert.Equal(t, 1, opts.DB)
}

func TestDisabledCacheIsNoop(t *testing.T) {
	c, err := NewSummaryCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.SetSummary(ctx, forecast.Summary{Entities: 5}))

	_, hit, err := c.GetSummary(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.Invalidate(ctx))
}
