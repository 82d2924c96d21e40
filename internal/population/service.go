package population

import (
	"fmt"

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

// BoroughProjection builds the projection view for one study area borough:
// the all-ages totals per year, the broad age-category sums per year, and
// the approximate average yearly growth of the total.
func (s *Service) BoroughProjection(borough string) (*BoroughProjection, error) {
	const op = "population.BoroughProjection"

	if s.store == nil {
		return nil, apperr.Unavailable("population projections file not available").WithOp(op)
	}
	if !s.isStudyBorough(borough) {
		return nil, apperr.NotFound(fmt.Sprintf("%q is not a study area borough", borough)).WithOp(op)
	}
	data, ok := s.store.Area(borough)
	if !ok {
		return nil, apperr.Unavailable(fmt.Sprintf("no population projections for %s", borough)).WithOp(op)
	}

	years := s.store.Years()
	out := &BoroughProjection{Borough: borough}

	var totals []float64
	for yi, year := range years {
		if yi < len(data.allAges) && data.allAges[yi] != nil {
			v := *data.allAges[yi]
			out.Total = append(out.Total, YearValue{Year: year, Value: v})
			totals = append(totals, v)
		}
	}

	for _, cat := range categories {
		series := CategorySeries{Category: cat}
		sums := data.categorySums[cat]
		for yi, year := range years {
			if yi < len(sums) {
				series.Values = append(series.Values, YearValue{Year: year, Value: sums[yi]})
			}
		}
		out.Categories = append(out.Categories, series)
	}

	if len(totals) >= 2 {
		growthSum := 0.0
		n := 0
		for i := 1; i < len(totals); i++ {
			if totals[i-1] != 0 {
				growthSum += (totals[i] - totals[i-1]) / totals[i-1]
				n++
			}
		}
		if n > 0 {
			growth := growthSum / float64(n) * 100
			out.AverageYearlyGrowth = &growth
		}
	}
	if len(totals) > 0 {
		latest := totals[len(totals)-1]
		out.LatestTotal = &latest
	}
	return out, nil
}

func (s *Service) isStudyBorough(borough string) bool {
	for _, b := range s.reg.Boroughs() {
		if b == borough {
			return true
		}
	}
	return false
}
