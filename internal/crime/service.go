package crime

import (
	"fmt"
	"sort"
	"time"

	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/apperr"
	"eqia_dashboard_backend/platform/logger"
)

// monthLabel formats months the way the published dashboards do.
const monthLabel = "January 2006"

type Service struct {
	reg   *registry.Registry
	store *Store
	log   *logger.Logger
}

func NewService(reg *registry.Registry, store *Store, log *logger.Logger) *Service {
	return &Service{reg: reg, store: store, log: log}
}

// BoroughSummary aggregates offence records for one study area borough:
// totals and shares by offence group and subgroup, the chronological monthly
// series, and peak/lowest/average month statistics. topGroups limits the
// group breakdown to the N largest; zero means no limit.
func (s *Service) BoroughSummary(borough string, topGroups int) (*BoroughSummary, error) {
	const op = "crime.BoroughSummary"

	if s.store == nil {
		return nil, apperr.Unavailable("crime data file not available").WithOp(op)
	}
	if !s.isStudyBorough(borough) {
		return nil, apperr.NotFound(fmt.Sprintf("%q is not a study area borough", borough)).WithOp(op)
	}
	records := s.store.Records(borough)
	if len(records) == 0 {
		return nil, apperr.Unavailable(fmt.Sprintf("no crime data for %s", borough)).WithOp(op)
	}

	total := 0
	groupCounts := make(map[string]int)
	subgroupCounts := make(map[string]map[string]int)
	monthCounts := make(map[time.Time]int)
	var latest time.Time
	for _, rec := range records {
		total += rec.count
		groupCounts[rec.group] += rec.count
		if subgroupCounts[rec.group] == nil {
			subgroupCounts[rec.group] = make(map[string]int)
		}
		subgroupCounts[rec.group][rec.subgroup] += rec.count
		monthCounts[rec.month] += rec.count
		if rec.month.After(latest) {
			latest = rec.month
		}
	}

	groups := make([]GroupTotal, 0, len(groupCounts))
	for group, count := range groupCounts {
		gt := GroupTotal{
			Group:      group,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		}
		for subgroup, sc := range subgroupCounts[group] {
			gt.Subgroups = append(gt.Subgroups, SubgroupTotal{
				Subgroup:   subgroup,
				Count:      sc,
				Percentage: float64(sc) / float64(count) * 100,
			})
		}
		sort.Slice(gt.Subgroups, func(i, j int) bool {
			if gt.Subgroups[i].Count != gt.Subgroups[j].Count {
				return gt.Subgroups[i].Count > gt.Subgroups[j].Count
			}
			return gt.Subgroups[i].Subgroup < gt.Subgroups[j].Subgroup
		})
		groups = append(groups, gt)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Group < groups[j].Group
	})
	if topGroups > 0 && topGroups < len(groups) {
		groups = groups[:topGroups]
	}

	months := make([]time.Time, 0, len(monthCounts))
	for m := range monthCounts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	monthly := make([]MonthTotal, 0, len(months))
	peak := MonthTotal{Count: -1}
	lowest := MonthTotal{}
	sum := 0
	for _, m := range months {
		mt := MonthTotal{Month: m.Format(monthLabel), Count: monthCounts[m]}
		monthly = append(monthly, mt)
		sum += mt.Count
		if peak.Count < 0 || mt.Count > peak.Count {
			peak = mt
		}
		if lowest.Month == "" || mt.Count < lowest.Count {
			lowest = mt
		}
	}

	return &BoroughSummary{
		Borough:        borough,
		TotalOffences:  total,
		LatestMonth:    latest.Format(monthLabel),
		Groups:         groups,
		Monthly:        monthly,
		AverageMonthly: float64(sum) / float64(len(monthly)),
		PeakMonth:      peak,
		LowestMonth:    lowest,
	}, nil
}

func (s *Service) isStudyBorough(borough string) bool {
	for _, b := range s.reg.Boroughs() {
		if b == borough {
			return true
		}
	}
	return false
}
