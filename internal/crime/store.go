package crime

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const dataFileName = "BLE_Boroughs_Crime_Data.csv"

// monthLayout is the Month_Year format in the source file, dd/mm/yyyy.
const monthLayout = "02/01/2006"

type record struct {
	borough  string
	group    string
	subgroup string
	month    time.Time
	count    int
}

// Store holds the parsed offence records grouped by borough.
type Store struct {
	byBorough map[string][]record
}

// NewStore loads the offence CSV from dataDir. Rows with an unparseable
// month or count are skipped rather than failing the load.
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
	boroughCol := indexOf(headers, "Borough_SNT")
	groupCol := indexOf(headers, "Offence Group")
	subgroupCol := indexOf(headers, "Offence Subgroup")
	monthCol := indexOf(headers, "Month_Year")
	countCol := indexOf(headers, "Count")
	if boroughCol < 0 || groupCol < 0 || monthCol < 0 || countCol < 0 {
		return nil, fmt.Errorf("%s: missing expected columns", dataFileName)
	}

	s := &Store{byBorough: make(map[string][]record)}
	for _, row := range records[1:] {
		if boroughCol >= len(row) || groupCol >= len(row) || monthCol >= len(row) || countCol >= len(row) {
			continue
		}
		month, err := time.Parse(monthLayout, strings.TrimSpace(row[monthCol]))
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(row[countCol]), ",", ""))
		if err != nil {
			continue
		}
		rec := record{
			borough: strings.TrimSpace(row[boroughCol]),
			group:   strings.TrimSpace(row[groupCol]),
			month:   month,
			count:   count,
		}
		if subgroupCol >= 0 && subgroupCol < len(row) {
			rec.subgroup = strings.TrimSpace(row[subgroupCol])
		}
		if rec.borough == "" || rec.group == "" {
			continue
		}
		s.byBorough[rec.borough] = append(s.byBorough[rec.borough], rec)
	}
	return s, nil
}

// Records returns all offence records for a borough.
func (s *Store) Records(borough string) []record {
	return s.byBorough[borough]
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
