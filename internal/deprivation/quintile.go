package deprivation

// quintileLabels indexes labels by quintile-1, most deprived first.
var quintileLabels = []string{
	"Most Deprived 20%",
	"More Deprived 20%",
	"Middle 20%",
	"Less Deprived 20%",
	"Least Deprived 20%",
}

// DecileToQuintile pairs deciles into quintiles: {1,2} -> 1 through
// {9,10} -> 5. Deciles outside 1..10 map to 0, the unclassified bucket.
func DecileToQuintile(decile int) int {
	if decile < 1 || decile > 10 {
		return 0
	}
	return (decile + 1) / 2
}

// QuintileDistribution computes the share of records in each quintile 1..5,
// as a percentage of all matched records. Unclassified records (quintile 0)
// count toward the denominator but have no bucket of their own, so the
// shares sum to 100 only when every record is classified.
func QuintileDistribution(records []LSOARecord) []QuintileShare {
	counts := make(map[int]int, 5)
	for _, rec := range records {
		if rec.Quintile >= 1 && rec.Quintile <= 5 {
			counts[rec.Quintile]++
		}
	}

	out := make([]QuintileShare, 0, 5)
	for q := 1; q <= 5; q++ {
		share := QuintileShare{Quintile: q, Label: quintileLabels[q-1]}
		if len(records) > 0 {
			share.Percentage = float64(counts[q]) / float64(len(records)) * 100
		}
		out = append(out, share)
	}
	return out
}
