package scheduler

import (
	"context"
	"testing"
	"time"

	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/logger"
)

type countingFetcher struct {
	calls int
}

func (f *countingFetcher) FetchValues(_ context.Context, _, _ string, _ map[string]string) ([]*float64, error) {
	f.calls++
	return nil, nil
}

func newTestWorker(fetcher *countingFetcher) *Worker {
	return &Worker{
		reg:     registry.Default(),
		fetcher: fetcher,
		log:     logger.New("development"),
	}
}

func TestWarmGeographiesDeduplicates(t *testing.T) {
	w := newTestWorker(&countingFetcher{})
	geos := w.warmGeographies()

	seen := make(map[string]struct{})
	for _, g := range geos {
		if _, dup := seen[g]; dup {
			t.Fatalf("duplicate geography %s", g)
		}
		seen[g] = struct{}{}
	}
	// Comparison areas come first.
	if geos[0] != "1778385187" || geos[1] != "2013265927" || geos[2] != "2092957699" {
		t.Fatalf("expected comparison areas first, got %v", geos[:3])
	}
}

func TestHandleCacheWarmFetchesAllDatasets(t *testing.T) {
	fetcher := &countingFetcher{}
	w := newTestWorker(fetcher)

	task, err := NewCacheWarmTask(CacheWarmPayload{Requested: time.Now().UTC()})
	if err != nil {
		t.Fatalf("NewCacheWarmTask: %v", err)
	}
	if err := w.handleCacheWarm(context.Background(), task); err != nil {
		t.Fatalf("handleCacheWarm: %v", err)
	}

	want := 4 * len(w.warmGeographies())
	if fetcher.calls != want {
		t.Fatalf("expected %d fetches, got %d", want, fetcher.calls)
	}
}

func TestHandleCacheWarmSkipsStaleRuns(t *testing.T) {
	fetcher := &countingFetcher{}
	w := newTestWorker(fetcher)

	task, err := NewCacheWarmTask(CacheWarmPayload{Requested: time.Now().Add(-2 * time.Hour)})
	if err != nil {
		t.Fatalf("NewCacheWarmTask: %v", err)
	}
	if err := w.handleCacheWarm(context.Background(), task); err != nil {
		t.Fatalf("handleCacheWarm: %v", err)
	}
	if fetcher.calls != 0 {
		t.Fatalf("expected stale run skipped, got %d fetches", fetcher.calls)
	}
}
