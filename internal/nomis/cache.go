package nomis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"eqia_dashboard_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// CachedFetcher decorates a Fetcher with a Redis response cache. Census
// figures change at release cadence, so cached series stay valid for hours.
// Empty answers are cached too, to avoid hammering the API for geographies
// that have no data. Redis failures degrade to direct fetches.
type CachedFetcher struct {
	inner Fetcher
	rdb   *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedFetcher wraps fetcher with a Redis cache.
func NewCachedFetcher(inner Fetcher, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CachedFetcher {
	return &CachedFetcher{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

// FetchValues returns the cached series when present, otherwise fetches and
// stores the result.
func (c *CachedFetcher) FetchValues(ctx context.Context, datasetID, geographyCode string, filter map[string]string) ([]*float64, error) {
	key := cacheKey(datasetID, geographyCode, filter)

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var values []*float64
		if err := json.Unmarshal([]byte(cached), &values); err == nil {
			return values, nil
		}
		// Corrupt entry: drop it and refetch.
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		c.log.Warn("fetch cache unavailable, fetching directly", "error", err.Error())
	}

	values, err := c.inner.FetchValues(ctx, datasetID, geographyCode, filter)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(values); err == nil {
		if err := c.rdb.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.log.Warn("fetch cache write failed", "error", err.Error())
		}
	}

	return values, nil
}

func cacheKey(datasetID, geographyCode string, filter map[string]string) string {
	var b strings.Builder
	b.WriteString("nomis:")
	b.WriteString(datasetID)
	b.WriteString(":")
	b.WriteString(geographyCode)
	for _, k := range sortedKeys(filter) {
		b.WriteString(":")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(filter[k])
	}
	return b.String()
}

var _ Fetcher = (*CachedFetcher)(nil)
