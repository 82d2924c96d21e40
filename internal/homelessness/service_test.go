package homelessness

import (
	"os"
	"path/filepath"
	"testing"

	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/apperr"
	"eqia_dashboard_backend/platform/logger"
)

const testCHAINCSV = `Area,2023-24 Q1,2023-24 Q2,2023-24 Q3
Lambeth,100,120,110
Southwark,80,90,100
Greater London Authority,"4,000","4,200","4,100"
Westminster,500,520,540
Source: CHAIN quarterly reports,,,
Downloaded from the London Datastore,,,
Note: counts are people seen rough sleeping,,,
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, dataFileName), []byte(testCHAINCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewService(registry.Default(), store, logger.New("development"))
}

func TestStoreSkipsMetadataRows(t *testing.T) {
	svc := newTestService(t)
	if _, ok := svc.store.Series("Source: CHAIN quarterly reports"); ok {
		t.Fatal("expected metadata rows to be skipped")
	}
	if _, ok := svc.store.Series("Lambeth"); !ok {
		t.Fatal("expected Lambeth series to load")
	}
	quarters := svc.store.Quarters()
	if len(quarters) != 3 || quarters[0] != "2023-24 Q1" {
		t.Fatalf("unexpected quarters: %v", quarters)
	}
}

func TestStationOverview(t *testing.T) {
	svc := newTestService(t)

	overview, err := svc.StationOverview("Old Kent Road")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Lewisham and Greenwich have no rows in the test file.
	if len(overview.Boroughs) != 2 {
		t.Fatalf("expected 2 borough series, got %d", len(overview.Boroughs))
	}

	lambeth := overview.Boroughs[0]
	if lambeth.Area != "Lambeth" {
		t.Fatalf("expected Lambeth first, got %s", lambeth.Area)
	}
	if lambeth.Average != 110 || lambeth.Minimum != 100 || lambeth.Maximum != 120 {
		t.Fatalf("unexpected Lambeth summary: avg %v min %v max %v",
			lambeth.Average, lambeth.Minimum, lambeth.Maximum)
	}

	if overview.London == nil {
		t.Fatal("expected Greater London Authority series")
	}
	if overview.London.Points[0].Value != 4000 {
		t.Fatalf("expected thousand separator parsed, got %v", overview.London.Points[0].Value)
	}
}

func TestStationOverviewUnknownStation(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.StationOverview("Atlantis")
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStationOverviewMissingStore(t *testing.T) {
	svc := NewService(registry.Default(), nil, logger.New("development"))
	_, err := svc.StationOverview("Lewisham")
	if apperr.GetKind(err) != apperr.KindUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
