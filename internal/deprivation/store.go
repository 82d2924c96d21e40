package deprivation

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Source file names inside the data directory.
const (
	lookupFileName = "LSOA to WD to LA Lookup.csv"
	imdFileName    = "IMD 2025.csv"
)

type imdRow struct {
	rank       *int
	imd        *int
	income     *int
	employment *int
	education  *int
	health     *int
	crime      *int
	barriers   *int
	livingEnv  *int
}

// Store holds the parsed lookup and deprivation tables, loaded once at
// startup.
type Store struct {
	lookup []WardLookupRow
	imd    map[string]imdRow
}

// NewStore loads both reference CSVs from dataDir. A missing file or a file
// without the expected columns fails the whole store; callers should treat
// that as "deprivation source unavailable" rather than fatal.
func NewStore(dataDir string) (*Store, error) {
	lookup, err := loadWardLookup(filepath.Join(dataDir, lookupFileName))
	if err != nil {
		return nil, err
	}
	imd, err := loadIMD(filepath.Join(dataDir, imdFileName))
	if err != nil {
		return nil, err
	}
	return &Store{lookup: lookup, imd: imd}, nil
}

// Lookup returns the ward to LSOA lookup rows.
func (s *Store) Lookup() []WardLookupRow {
	return s.lookup
}

// IMD returns the deprivation row for an LSOA code.
func (s *Store) IMD(lsoaCode string) (imdRow, bool) {
	row, ok := s.imd[lsoaCode]
	return row, ok
}

// findColumn tries each candidate keyword in order against the headers,
// case-insensitive substring match, first hit wins. Column headers are not
// stable across data releases, so exact-name lookup is deliberately avoided.
func findColumn(headers []string, candidates ...string) int {
	for _, candidate := range candidates {
		needle := strings.ToLower(candidate)
		for i, h := range headers {
			if strings.Contains(strings.ToLower(h), needle) {
				return i
			}
		}
	}
	return -1
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", filepath.Base(path))
	}
	return records, nil
}

func loadWardLookup(path string) ([]WardLookupRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	headers := records[0]
	codeCol := findColumn(headers, "LSOA21CD")
	nameCol := findColumn(headers, "LSOA21NM")
	wardCol := findColumn(headers, "WD22NM")
	if codeCol < 0 || wardCol < 0 {
		return nil, fmt.Errorf("%s: missing LSOA code or ward name column", lookupFileName)
	}

	rows := make([]WardLookupRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if codeCol >= len(rec) || wardCol >= len(rec) {
			continue
		}
		row := WardLookupRow{
			LSOACode: strings.TrimSpace(rec[codeCol]),
			WardName: strings.TrimSpace(rec[wardCol]),
		}
		if row.LSOACode == "" {
			continue
		}
		if nameCol >= 0 && nameCol < len(rec) {
			row.LSOAName = strings.TrimSpace(rec[nameCol])
		}
		if row.LSOAName == "" {
			row.LSOAName = row.LSOACode
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func loadIMD(path string) (map[string]imdRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	headers := records[0]
	codeCol := findColumn(headers, "LSOA code (2021)", "LSOA21CD", "LSOA code", "lsoa")
	if codeCol < 0 {
		return nil, fmt.Errorf("%s: missing LSOA code column", imdFileName)
	}
	imdDecileCol := findColumn(headers, "Index of Multiple Deprivation (IMD) Decile", "imd decile")
	if imdDecileCol < 0 {
		return nil, fmt.Errorf("%s: missing IMD decile column", imdFileName)
	}

	rankCol := findColumn(headers, "Index of Multiple Deprivation (IMD) Rank", "imd rank")
	incomeCol := findColumn(headers, "Income Decile")
	employmentCol := findColumn(headers, "Employment Decile")
	educationCol := findColumn(headers, "Education, Skills and Training Decile", "Education Decile")
	healthCol := findColumn(headers, "Health Deprivation and Disability Decile", "Health Decile")
	crimeCol := findColumn(headers, "Crime Decile")
	barriersCol := findColumn(headers, "Barriers to Housing and Services Decile", "Barriers Decile")
	livingEnvCol := findColumn(headers, "Living Environment Decile")

	out := make(map[string]imdRow, len(records)-1)
	for _, rec := range records[1:] {
		if codeCol >= len(rec) {
			continue
		}
		code := strings.TrimSpace(rec[codeCol])
		if code == "" {
			continue
		}
		out[code] = imdRow{
			rank:       cellInt(rec, rankCol),
			imd:        cellInt(rec, imdDecileCol),
			income:     cellInt(rec, incomeCol),
			employment: cellInt(rec, employmentCol),
			education:  cellInt(rec, educationCol),
			health:     cellInt(rec, healthCol),
			crime:      cellInt(rec, crimeCol),
			barriers:   cellInt(rec, barriersCol),
			livingEnv:  cellInt(rec, livingEnvCol),
		}
	}
	return out, nil
}

// cellInt parses the cell at col as an integer, tolerating thousand
// separators. Returns nil for out-of-range columns and non-numeric cells.
func cellInt(rec []string, col int) *int {
	if col < 0 || col >= len(rec) {
		return nil
	}
	s := strings.ReplaceAll(strings.TrimSpace(rec[col]), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Deciles sometimes arrive as "3.0" in re-exported files.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		v = int(f)
	}
	return &v
}
