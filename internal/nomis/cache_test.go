package nomis

import (
	"context"
	"testing"
	"time"

	"eqia_dashboard_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingFetcher struct {
	calls  int
	values []*float64
}

func (f *countingFetcher) FetchValues(ctx context.Context, datasetID, geographyCode string, filter map[string]string) ([]*float64, error) {
	f.calls++
	return f.values, nil
}

func fptr(v float64) *float64 { return &v }

func newTestCache(t *testing.T, inner Fetcher) *CachedFetcher {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCachedFetcher(inner, rdb, time.Hour, logger.New("development"))
}

func TestCachedFetcherServesSecondCallFromCache(t *testing.T) {
	inner := &countingFetcher{values: []*float64{fptr(100), fptr(10.5)}}
	cache := newTestCache(t, inner)
	ctx := context.Background()

	first, err := cache.FetchValues(ctx, "NM_2018_1", "641734708", map[string]string{"c2021_age_12a": "0...11"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	second, err := cache.FetchValues(ctx, "NM_2018_1", "641734708", map[string]string{"c2021_age_12a": "0...11"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", inner.calls)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 values from both calls, got %d and %d", len(first), len(second))
	}
	if *second[1] != 10.5 {
		t.Fatalf("expected cached percentage 10.5, got %v", *second[1])
	}
}

func TestCachedFetcherCachesEmptyAnswers(t *testing.T) {
	inner := &countingFetcher{values: nil}
	cache := newTestCache(t, inner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		values, err := cache.FetchValues(ctx, "NM_2041_1", "641732386", nil)
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if values != nil {
			t.Fatalf("expected nil values, got %v", values)
		}
	}

	if inner.calls != 1 {
		t.Fatalf("expected empty answer to be cached after 1 call, got %d calls", inner.calls)
	}
}

func TestCacheKeyDistinguishesFilters(t *testing.T) {
	a := cacheKey("NM_2018_1", "641734708", map[string]string{"c2021_age_12a": "0...11"})
	b := cacheKey("NM_2018_1", "641734708", nil)
	if a == b {
		t.Fatalf("expected distinct keys for filtered and unfiltered requests")
	}

	c := cacheKey("NM_2018_1", "641734708", map[string]string{"c2021_age_12a": "0...11"})
	if a != c {
		t.Fatalf("expected deterministic key, got %q and %q", a, c)
	}
}
