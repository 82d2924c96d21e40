// Package crime serves Metropolitan Police recorded offence counts for the
// study area boroughs.
package crime

// SubgroupTotal is an offence subgroup total with its share of the group.
type SubgroupTotal struct {
	Subgroup   string  `json:"subgroup"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GroupTotal is an offence group total with its share of all offences and
// the subgroup breakdown, subgroups sorted by count descending.
type GroupTotal struct {
	Group      string          `json:"group"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
	Subgroups  []SubgroupTotal `json:"subgroups"`
}

// MonthTotal is the offence total for one calendar month.
type MonthTotal struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// BoroughSummary is the per-borough crime view: totals by offence group,
// the monthly series in chronological order, and summary statistics.
type BoroughSummary struct {
	Borough        string       `json:"borough"`
	TotalOffences  int          `json:"totalOffences"`
	LatestMonth    string       `json:"latestMonth"`
	Groups         []GroupTotal `json:"groups"`
	Monthly        []MonthTotal `json:"monthly"`
	AverageMonthly float64      `json:"averageMonthly"`
	PeakMonth      MonthTotal   `json:"peakMonth"`
	LowestMonth    MonthTotal   `json:"lowestMonth"`
}
