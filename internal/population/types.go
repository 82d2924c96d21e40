// Package population serves GLA population projections for the study area
// boroughs.
package population

// YearValue is the projected population for one year.
type YearValue struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

// CategorySeries is the projected population per year for one broad age
// category (0-15, 16-64, 65+).
type CategorySeries struct {
	Category string      `json:"category"`
	Values   []YearValue `json:"values"`
}

// BoroughProjection is the per-borough projection view.
type BoroughProjection struct {
	Borough string      `json:"borough"`
	Total   []YearValue `json:"total"`

	Categories []CategorySeries `json:"categories"`

	// AverageYearlyGrowth is the mean year-on-year growth of the all-ages
	// total, in percent. Nil when fewer than two years are available.
	AverageYearlyGrowth *float64 `json:"averageYearlyGrowth"`

	// LatestTotal is the all-ages value for the final projected year.
	LatestTotal *float64 `json:"latestTotal"`
}
