// Package census implements the core extraction rules for NOMIS value
// arrays: it turns raw responses into ordered percentage series and defines
// the fixed category taxonomies per demographic dimension.
package census

// Series is the result of percentage extraction. A zero Series means the
// source had no usable data; Values is only meaningful when Available is true,
// in which case it holds exactly one percentage per taxonomy category.
type Series struct {
	Available bool
	Values    []float64
}

// At returns the percentage at category index i, or nil when the series is
// unavailable or does not cover that index.
func (s Series) At(i int) *float64 {
	if !s.Available || i < 0 || i >= len(s.Values) {
		return nil
	}
	v := s.Values[i]
	return &v
}

// ExtractPercentages normalizes a raw NOMIS value array into percentages for
// categoryCount categories. The source uses two physical layouts:
//
//   - interleaved [count, pct, count, pct, ...] pairs when both the count and
//     percentage measures were requested (length >= 2*categoryCount), and
//   - a flat percentage array (length >= categoryCount).
//
// The paired interpretation wins whenever the length admits it. A nil cell in
// any required position aborts the whole extraction: a series with holes is
// unavailable, not partially valid. Short or nil input is a legitimate
// "no data" answer.
func ExtractPercentages(raw []*float64, categoryCount int) Series {
	if raw == nil || categoryCount <= 0 {
		return Series{}
	}

	if len(raw) >= 2*categoryCount {
		values := make([]float64, 0, categoryCount)
		for i := 1; i < 2*categoryCount; i += 2 {
			if raw[i] == nil {
				return Series{}
			}
			values = append(values, *raw[i])
		}
		return Series{Available: true, Values: values}
	}

	if len(raw) >= categoryCount {
		values := make([]float64, 0, categoryCount)
		for i := 0; i < categoryCount; i++ {
			if raw[i] == nil {
				return Series{}
			}
			values = append(values, *raw[i])
		}
		return Series{Available: true, Values: values}
	}

	return Series{}
}
