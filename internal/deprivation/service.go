package deprivation

import (
	"fmt"
	"sort"

	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/apperr"
	"eqia_dashboard_backend/platform/logger"
)

type Service struct {
	reg   *registry.Registry
	store *Store
	log   *logger.Logger
}

func NewService(reg *registry.Registry, store *Store, log *logger.Logger) *Service {
	return &Service{reg: reg, store: store, log: log}
}

// StationSummary builds the deprivation view for one station: the LSOAs
// matched to its wards, their deciles sorted most deprived first, and the
// quintile distribution. Failure to join any ward is a distinct unavailable
// state, not an empty table.
func (s *Service) StationSummary(stationName string) (*Summary, error) {
	const op = "deprivation.StationSummary"

	if s.store == nil {
		return nil, apperr.Unavailable("deprivation data files not available").WithOp(op)
	}
	station, ok := s.reg.Station(stationName)
	if !ok {
		return nil, apperr.NotFound(fmt.Sprintf("unknown station %q", stationName)).WithOp(op)
	}

	wardNames := make([]string, 0, len(station.Wards))
	for _, w := range station.Wards {
		wardNames = append(wardNames, w.Name)
	}
	matched := MatchWards(wardNames, s.store.Lookup())
	if len(matched) == 0 {
		return nil, apperr.Unavailable("no geographic join possible for station wards").WithOp(op)
	}

	// De-duplicate LSOAs, keeping first occurrence order from the lookup.
	seen := make(map[string]struct{}, len(matched))
	records := make([]LSOARecord, 0, len(matched))
	for _, row := range matched {
		if _, dup := seen[row.LSOACode]; dup {
			continue
		}
		seen[row.LSOACode] = struct{}{}

		rec := LSOARecord{LSOACode: row.LSOACode, LSOAName: row.LSOAName}
		if imd, ok := s.store.IMD(row.LSOACode); ok {
			rec.IMDRank = imd.rank
			rec.IMDDecile = imd.imd
			rec.IncomeDecile = imd.income
			rec.EmploymentDecile = imd.employment
			rec.EducationDecile = imd.education
			rec.HealthDecile = imd.health
			rec.CrimeDecile = imd.crime
			rec.BarriersDecile = imd.barriers
			rec.LivingEnvDecile = imd.livingEnv
		}
		if rec.IMDDecile != nil {
			rec.Quintile = DecileToQuintile(*rec.IMDDecile)
		}
		records = append(records, rec)
	}

	// Most deprived first; LSOAs without a rank sink to the end.
	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := records[i].IMDRank, records[j].IMDRank
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri < *rj
	})

	return &Summary{
		Station:      station.Name,
		MatchedLSOAs: len(records),
		Records:      records,
		Quintiles:    QuintileDistribution(records),
	}, nil
}
