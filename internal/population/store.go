package population

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const dataFileName = "BLE_Population Projections Data.csv"

// Broad age categories in display order.
var categories = []string{"0-15", "16-64", "65+"}

type areaData struct {
	// allAges holds the "All ages" row aligned with Store.years; nil cells
	// were not numeric in the file.
	allAges []*float64
	// categorySums holds summed single-age rows per broad category.
	categorySums map[string][]float64
}

// Store holds the parsed projections grouped by area name.
type Store struct {
	years []string
	areas map[string]*areaData
}

// NewStore loads the projections CSV from dataDir. The file has AREA_CODE,
// AREA_NAME and AGE_GROUP columns followed by one column per projected
// year. AGE_GROUP rows are single ages plus "90 and over" and an "All ages"
// total row per area.
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
	areaCol := indexOf(headers, "AREA_NAME")
	ageCol := indexOf(headers, "AGE_GROUP")
	if areaCol < 0 || ageCol < 0 {
		return nil, fmt.Errorf("%s: missing AREA_NAME or AGE_GROUP column", dataFileName)
	}
	var yearCols []int
	var years []string
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, err := strconv.Atoi(h); err == nil {
			yearCols = append(yearCols, i)
			years = append(years, h)
		}
	}
	if len(yearCols) == 0 {
		return nil, fmt.Errorf("%s: no year columns", dataFileName)
	}

	s := &Store{years: years, areas: make(map[string]*areaData)}
	for _, rec := range records[1:] {
		if areaCol >= len(rec) || ageCol >= len(rec) {
			continue
		}
		area := strings.TrimSpace(rec[areaCol])
		if area == "" {
			continue
		}
		data := s.areas[area]
		if data == nil {
			data = &areaData{categorySums: make(map[string][]float64)}
			for _, cat := range categories {
				data.categorySums[cat] = make([]float64, len(yearCols))
			}
			s.areas[area] = data
		}

		ageLabel := strings.TrimSpace(rec[ageCol])
		if strings.EqualFold(ageLabel, "All ages") {
			data.allAges = make([]*float64, len(yearCols))
			for yi, col := range yearCols {
				data.allAges[yi] = cellFloat(rec, col)
			}
			continue
		}

		cat, ok := ageCategory(ageLabel)
		if !ok {
			continue
		}
		sums := data.categorySums[cat]
		for yi, col := range yearCols {
			if v := cellFloat(rec, col); v != nil {
				sums[yi] += *v
			}
		}
	}
	return s, nil
}

// Years returns the projected year labels in file order.
func (s *Store) Years() []string {
	out := make([]string, len(s.years))
	copy(out, s.years)
	return out
}

// Area returns the parsed data for an area name.
func (s *Store) Area(name string) (*areaData, bool) {
	data, ok := s.areas[name]
	return data, ok
}

// ageCategory buckets a single-age label into a broad category. "90 and
// over" counts as age 90. Labels that are neither a number nor mention 90
// are ignored.
func ageCategory(label string) (string, bool) {
	age, err := strconv.Atoi(label)
	if err != nil {
		if strings.Contains(label, "90") {
			age = 90
		} else {
			return "", false
		}
	}
	switch {
	case age <= 15:
		return "0-15", true
	case age <= 64:
		return "16-64", true
	default:
		return "65+", true
	}
}

func cellFloat(rec []string, col int) *float64 {
	if col < 0 || col >= len(rec) {
		return nil
	}
	s := strings.ReplaceAll(strings.TrimSpace(rec[col]), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
