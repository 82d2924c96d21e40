package deprivation

import (
	"strings"
	"unicode"
)

// WardLookupRow is one row of the LSOA to ward lookup table.
type WardLookupRow struct {
	LSOACode string
	LSOAName string
	WardName string
}

// NormalizeName canonicalises a geographic name for matching across
// datasets: lowercase, "&" becomes "and", apostrophes (straight and curly)
// are stripped, anything that is not alphanumeric or whitespace is stripped,
// and whitespace runs collapse to a single space. Idempotent.
func NormalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// MatchWards selects the lookup rows whose ward name matches any of the
// given ward names. The first pass requires exact equality of normalized
// names. Only when that pass matches nothing across all wards does a second
// pass run, accepting any lookup ward name that contains a target name as a
// substring. The fallback trades precision for recall when ward names drift
// between data releases. An empty result means no geographic join is
// possible.
func MatchWards(wardNames []string, rows []WardLookupRow) []WardLookupRow {
	targets := make(map[string]struct{}, len(wardNames))
	for _, name := range wardNames {
		if n := NormalizeName(name); n != "" {
			targets[n] = struct{}{}
		}
	}
	if len(targets) == 0 {
		return nil
	}

	var matched []WardLookupRow
	for _, row := range rows {
		if _, ok := targets[NormalizeName(row.WardName)]; ok {
			matched = append(matched, row)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	for _, row := range rows {
		norm := NormalizeName(row.WardName)
		for target := range targets {
			if strings.Contains(norm, target) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}
