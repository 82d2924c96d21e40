package homelessness

import (
	"fmt"

	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/apperr"
	"eqia_dashboard_backend/platform/logger"
)

// glaAreaName is the London-wide series in the CHAIN file.
const glaAreaName = "Greater London Authority"

type Service struct {
	reg   *registry.Registry
	store *Store
	log   *logger.Logger
}

func NewService(reg *registry.Registry, store *Store, log *logger.Logger) *Service {
	return &Service{reg: reg, store: store, log: log}
}

// StationOverview returns the quarterly homelessness series for the study
// area boroughs plus the Greater London Authority, with per-area summary
// statistics. The series are borough level, so every station in the study
// area sees the same four boroughs.
func (s *Service) StationOverview(stationName string) (*Overview, error) {
	const op = "homelessness.StationOverview"

	if s.store == nil {
		return nil, apperr.Unavailable("homelessness data file not available").WithOp(op)
	}
	station, ok := s.reg.Station(stationName)
	if !ok {
		return nil, apperr.NotFound(fmt.Sprintf("unknown station %q", stationName)).WithOp(op)
	}

	overview := &Overview{Station: station.Name}
	for _, borough := range s.reg.Boroughs() {
		points, ok := s.store.Series(borough)
		if !ok {
			s.log.Warn("no homelessness series for borough", "borough", borough)
			continue
		}
		overview.Boroughs = append(overview.Boroughs, summarise(borough, points))
	}
	if points, ok := s.store.Series(glaAreaName); ok {
		series := summarise(glaAreaName, points)
		overview.London = &series
	}

	if len(overview.Boroughs) == 0 && overview.London == nil {
		return nil, apperr.Unavailable("no homelessness data for study area boroughs").WithOp(op)
	}
	return overview, nil
}

func summarise(area string, points []QuarterValue) AreaSeries {
	series := AreaSeries{Area: area, Points: points}
	if len(points) == 0 {
		return series
	}
	sum := 0.0
	series.Minimum = points[0].Value
	series.Maximum = points[0].Value
	for _, p := range points {
		sum += p.Value
		if p.Value < series.Minimum {
			series.Minimum = p.Value
		}
		if p.Value > series.Maximum {
			series.Maximum = p.Value
		}
	}
	series.Average = sum / float64(len(points))
	return series
}
