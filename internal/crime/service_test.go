package crime

import (
	"os"
	"path/filepath"
	"testing"

	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/apperr"
	"eqia_dashboard_backend/platform/logger"
)

const testCrimeCSV = `Borough_SNT,Offence Group,Offence Subgroup,Month_Year,Count,Refresh Date
Southwark,Theft,Shoplifting,01/01/2025,40,01/06/2025
Southwark,Theft,Bicycle Theft,01/01/2025,10,01/06/2025
Southwark,Violence Against the Person,Common Assault,01/01/2025,30,01/06/2025
Southwark,Theft,Shoplifting,01/02/2025,15,01/06/2025
Southwark,Violence Against the Person,Common Assault,01/02/2025,5,01/06/2025
Lambeth,Robbery,Personal Robbery,01/01/2025,12,01/06/2025
Westminster,Theft,Shoplifting,01/01/2025,99,01/06/2025
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, dataFileName), []byte(testCrimeCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewService(registry.Default(), store, logger.New("development"))
}

func TestBoroughSummary(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.BoroughSummary("Southwark", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalOffences != 100 {
		t.Fatalf("expected 100 total offences, got %d", summary.TotalOffences)
	}
	if summary.LatestMonth != "February 2025" {
		t.Fatalf("expected latest month February 2025, got %s", summary.LatestMonth)
	}

	// Theft 65 beats Violence 35.
	if summary.Groups[0].Group != "Theft" || summary.Groups[0].Count != 65 {
		t.Fatalf("expected Theft 65 first, got %+v", summary.Groups[0])
	}
	if summary.Groups[0].Percentage != 65 {
		t.Fatalf("expected 65%% share, got %v", summary.Groups[0].Percentage)
	}

	// Shoplifting 55 of Theft's 65.
	sub := summary.Groups[0].Subgroups[0]
	if sub.Subgroup != "Shoplifting" || sub.Count != 55 {
		t.Fatalf("expected Shoplifting 55 first, got %+v", sub)
	}

	if len(summary.Monthly) != 2 {
		t.Fatalf("expected 2 months, got %d", len(summary.Monthly))
	}
	if summary.Monthly[0].Month != "January 2025" || summary.Monthly[0].Count != 80 {
		t.Fatalf("unexpected first month: %+v", summary.Monthly[0])
	}
	if summary.PeakMonth.Month != "January 2025" || summary.PeakMonth.Count != 80 {
		t.Fatalf("unexpected peak month: %+v", summary.PeakMonth)
	}
	if summary.LowestMonth.Month != "February 2025" || summary.LowestMonth.Count != 20 {
		t.Fatalf("unexpected lowest month: %+v", summary.LowestMonth)
	}
	if summary.AverageMonthly != 50 {
		t.Fatalf("expected average 50 per month, got %v", summary.AverageMonthly)
	}
}

func TestBoroughSummaryTopGroupsLimit(t *testing.T) {
	svc := newTestService(t)
	summary, err := svc.BoroughSummary("Southwark", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Groups) != 1 || summary.Groups[0].Group != "Theft" {
		t.Fatalf("expected only the largest group, got %+v", summary.Groups)
	}
	// The limit trims the breakdown, not the totals.
	if summary.TotalOffences != 100 {
		t.Fatalf("expected totals unaffected by limit, got %d", summary.TotalOffences)
	}
}

func TestBoroughSummaryOutsideStudyArea(t *testing.T) {
	svc := newTestService(t)
	// Westminster is in the file but not a study area borough.
	_, err := svc.BoroughSummary("Westminster", 0)
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBoroughSummaryNoData(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.BoroughSummary("Greenwich", 0)
	if apperr.GetKind(err) != apperr.KindUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestBoroughSummaryMissingStore(t *testing.T) {
	svc := NewService(registry.Default(), nil, logger.New("development"))
	_, err := svc.BoroughSummary("Southwark", 0)
	if apperr.GetKind(err) != apperr.KindUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
