package deprivation

import "testing"

func TestDecileToQuintile(t *testing.T) {
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 7: 4, 8: 4, 9: 5, 10: 5}
	for decile, quintile := range want {
		if got := DecileToQuintile(decile); got != quintile {
			t.Fatalf("decile %d: expected quintile %d, got %d", decile, quintile, got)
		}
	}
	for _, decile := range []int{0, -1, 11} {
		if got := DecileToQuintile(decile); got != 0 {
			t.Fatalf("decile %d: expected unclassified 0, got %d", decile, got)
		}
	}
}

func TestQuintileDistributionEvenSpread(t *testing.T) {
	records := make([]LSOARecord, 0, 10)
	for decile := 1; decile <= 10; decile++ {
		records = append(records, LSOARecord{Quintile: DecileToQuintile(decile)})
	}
	dist := QuintileDistribution(records)
	if len(dist) != 5 {
		t.Fatalf("expected 5 quintile shares, got %d", len(dist))
	}
	for _, share := range dist {
		if share.Percentage != 20 {
			t.Fatalf("quintile %d: expected 20%%, got %v", share.Quintile, share.Percentage)
		}
	}
	if dist[0].Label != "Most Deprived 20%" || dist[4].Label != "Least Deprived 20%" {
		t.Fatalf("unexpected labels: %q, %q", dist[0].Label, dist[4].Label)
	}
}

func TestQuintileDistributionCountsUnclassifiedInTotal(t *testing.T) {
	// Unclassified records have no bucket but stay in the denominator, so
	// the five shares do not sum to 100 here.
	records := []LSOARecord{
		{Quintile: 1},
		{Quintile: 1},
		{Quintile: 0},
		{Quintile: 0},
	}
	dist := QuintileDistribution(records)
	if dist[0].Percentage != 50 {
		t.Fatalf("expected quintile 1 at 50%% of all matched records, got %v", dist[0].Percentage)
	}
	for _, share := range dist[1:] {
		if share.Percentage != 0 {
			t.Fatalf("quintile %d: expected 0%%, got %v", share.Quintile, share.Percentage)
		}
	}
}

func TestQuintileDistributionEmpty(t *testing.T) {
	dist := QuintileDistribution(nil)
	for _, share := range dist {
		if share.Percentage != 0 {
			t.Fatalf("expected zero percentages for empty input, got %v", share.Percentage)
		}
	}
}
