package homelessness

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const dataFileName = "GLA Homelessness Data 23-25.csv"

// metadataRow matches the trailing notes the GLA appends below the data.
var metadataRow = regexp.MustCompile(`(?i)source|email|downloaded|explanatory|date|note`)

// Store holds the parsed CHAIN table: one quarterly series per area.
type Store struct {
	quarters []string
	areas    map[string][]QuarterValue
}

// NewStore loads the CHAIN CSV from dataDir. The file has an "Area" column,
// quarter columns named like "2023-24 Q1", and free-text metadata rows at
// the bottom that must be skipped.
func NewStore(dataDir string) (*Store, error) {
	path := filepath.Join(dataDir, dataFileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dataFileName, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", dataFileName)
	}

	headers := records[0]
	areaCol := -1
	var quarterCols []int
	for i, h := range headers {
		switch {
		case strings.EqualFold(strings.TrimSpace(h), "Area"):
			areaCol = i
		case strings.Contains(h, "Q"):
			quarterCols = append(quarterCols, i)
		}
	}
	if areaCol < 0 {
		return nil, fmt.Errorf("%s: missing Area column", dataFileName)
	}
	if len(quarterCols) == 0 {
		return nil, fmt.Errorf("%s: no quarter columns", dataFileName)
	}

	s := &Store{areas: make(map[string][]QuarterValue)}
	for _, col := range quarterCols {
		s.quarters = append(s.quarters, strings.TrimSpace(headers[col]))
	}

	for _, rec := range records[1:] {
		if areaCol >= len(rec) {
			continue
		}
		area := strings.TrimSpace(rec[areaCol])
		if area == "" || metadataRow.MatchString(area) {
			continue
		}
		var points []QuarterValue
		for qi, col := range quarterCols {
			if col >= len(rec) {
				continue
			}
			raw := strings.ReplaceAll(strings.TrimSpace(rec[col]), ",", "")
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			points = append(points, QuarterValue{Quarter: s.quarters[qi], Value: v})
		}
		if len(points) > 0 {
			s.areas[area] = points
		}
	}
	return s, nil
}

// Quarters returns the quarter labels in file order.
func (s *Store) Quarters() []string {
	out := make([]string, len(s.quarters))
	copy(out, s.quarters)
	return out
}

// Series returns the quarterly series for an area.
func (s *Store) Series(area string) ([]QuarterValue, bool) {
	points, ok := s.areas[area]
	return points, ok
}
