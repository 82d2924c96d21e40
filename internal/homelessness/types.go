// Package homelessness serves quarterly rough-sleeping counts from the GLA
// CHAIN dataset for the study area boroughs.
package homelessness

// QuarterValue is one quarterly observation, e.g. quarter "2023-24 Q1".
type QuarterValue struct {
	Quarter string  `json:"quarter"`
	Value   float64 `json:"value"`
}

// AreaSeries is the quarterly series for one area with summary statistics
// over the observed quarters.
type AreaSeries struct {
	Area    string         `json:"area"`
	Points  []QuarterValue `json:"points"`
	Average float64        `json:"average"`
	Minimum float64        `json:"minimum"`
	Maximum float64        `json:"maximum"`
}

// Overview is the per-station homelessness view: the study area boroughs
// plus the Greater London Authority series for context.
type Overview struct {
	Station  string       `json:"station"`
	Boroughs []AreaSeries `json:"boroughs"`
	London   *AreaSeries  `json:"london,omitempty"`
}
