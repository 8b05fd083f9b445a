package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/supplylens/supplylens/internal/config"
	"github.com/supplylens/supplylens/internal/forecast"
)

const summaryKey = "forecast:summary:latest"

// SummaryCache holds the summary of the most recent forecast run so the API
// can answer without waiting for a run.
type SummaryCache interface {
	GetSummary(ctx context.Context) (forecast.Summary, bool, error)
	SetSummary(ctx context.Context, summary forecast.Summary) error
	Invalidate(ctx context.Context) error
}

type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopSummaryCache struct{}

// NewSummaryCache returns a redis-backed cache, or a noop when caching is
// disabled.
func NewSummaryCache(cfg config.CacheConfig) (SummaryCache, error) {
	if !cfg.Enabled {
		return &noopSummaryCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisSummaryCache{client: client, ttl: ttl}, nil
}

// NewNoopSummaryCache returns the disabled implementation directly.
func NewNoopSummaryCache() SummaryCache {
	return &noopSummaryCache{}
}

func (c *redisSummaryCache) GetSummary(ctx context.Context) (forecast.Summary, bool, error) {
	var summary forecast.Summary

	payload, err := c.client.Get(ctx, summaryKey).Bytes()
	if err == redis.Nil {
		return summary, false, nil
	}
	if err != nil {
		return summary, false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(payload, &summary); err != nil {
		return summary, false, fmt.Errorf("decode forecast summary cache: %w", err)
	}
	return summary, true, nil
}

func (c *redisSummaryCache) SetSummary(ctx context.Context, summary forecast.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode forecast summary cache: %w", err)
	}

	if err := c.client.Set(ctx, summaryKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisSummaryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, summaryKey).Err()
}

func (n *noopSummaryCache) GetSummary(ctx context.Context) (forecast.Summary, bool, error) {
	return forecast.Summary{}, false, nil
}

func (n *noopSummaryCache) SetSummary(ctx context.Context, summary forecast.Summary) error {
	return nil
}

func (n *noopSummaryCache) Invalidate(ctx context.Context) error {
	return nil
}
