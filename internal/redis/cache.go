package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles dashboard snapshot caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	OverviewCacheTTL = 15 * time.Second // aggregates are cheap to refresh but hit on every page load
	TrendsCacheTTL   = 60 * time.Second // daily series only move once a day
)

// Key prefixes
const (
	overviewCacheKey  = "cache:dashboard:overview"
	trendsCachePrefix = "cache:dashboard:trends:"
)

// GetOverview retrieves a cached dashboard overview snapshot.
// The snapshot is unmarshalled into dest; ok is false on cache miss.
func (s *CacheStore) GetOverview(ctx context.Context, dest any) (bool, error) {
	return s.get(ctx, overviewCacheKey, dest)
}

// SetOverview stores a dashboard overview snapshot.
func (s *CacheStore) SetOverview(ctx context.Context, snapshot any) error {
	return s.set(ctx, overviewCacheKey, snapshot, OverviewCacheTTL)
}

// InvalidateOverview removes the overview snapshot, forcing a re-aggregation
// on the next read. Called after moderation writes.
func (s *CacheStore) InvalidateOverview(ctx context.Context) error {
	return s.client.Del(ctx, overviewCacheKey).Err()
}

// GetTrends retrieves a cached trend series for the given window.
func (s *CacheStore) GetTrends(ctx context.Context, windowDays int, dest any) (bool, error) {
	return s.get(ctx, trendsKey(windowDays), dest)
}

// SetTrends stores a trend series for the given window.
func (s *CacheStore) SetTrends(ctx context.Context, windowDays int, snapshot any) error {
	return s.set(ctx, trendsKey(windowDays), snapshot, TrendsCacheTTL)
}

// InvalidateTrends removes every cached trend series, whatever window sizes
// are live. Called after payment writes since those move the revenue series.
func (s *CacheStore) InvalidateTrends(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, trendsCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func trendsKey(windowDays int) string {
	return trendsCachePrefix + strconv.Itoa(windowDays)
}

func (s *CacheStore) get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Cache miss
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CacheStore) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}
