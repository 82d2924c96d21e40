// Package transport provides DTOs for the demographics domain.
package transport

// TableRow is one (area, category) cell of a comparative table. Percentage is
// nil when that area's data did not cover the category; zero is a real value.
type TableRow struct {
	Area       string   `json:"area"`
	Category   string   `json:"category"`
	Percentage *float64 `json:"percentage"`
}

// BroadBandRow is one (area, broad age band) rollup cell.
type BroadBandRow struct {
	Area       string   `json:"area"`
	Band       string   `json:"band"`
	Percentage *float64 `json:"percentage"`
}

// ComparativeTable is the canonical long-form comparison output for one
// station and dimension. Rows cover every (area, category) pair in canonical
// area order then taxonomy order, "Total" excluded.
type ComparativeTable struct {
	Station    string         `json:"station"`
	Dimension  string         `json:"dimension"`
	Areas      []string       `json:"areas"`
	Categories []string       `json:"categories"`
	Rows       []TableRow     `json:"rows"`
	BroadBands []BroadBandRow `json:"broadBands,omitempty"`
}

// StationSummary describes a station and its ward names for listings.
type StationSummary struct {
	Name  string   `json:"name"`
	Wards []string `json:"wards"`
}
