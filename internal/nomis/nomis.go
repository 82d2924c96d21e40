// Package nomis provides the client for the NOMIS census statistics API and
// the fetch contract the demographic pipeline depends on.
//
// The pipeline never treats a failed or empty fetch as fatal: a nil value
// series means "no data for this geography" and flows upward as such.
package nomis

import "context"

// Fetcher retrieves the raw numeric series for a (dataset, geography, filter)
// triple. A nil slice with a nil error means the source had no data. Entries
// may be nil where the source reported a non-numeric cell.
type Fetcher interface {
	FetchValues(ctx context.Context, datasetID, geographyCode string, filter map[string]string) ([]*float64, error)
}

// jsonstatResponse is the subset of the NOMIS jsonstat payload the pipeline
// reads. Anything without a usable "value" array counts as no data.
type jsonstatResponse struct {
	Value []*float64 `json:"value"`
}
