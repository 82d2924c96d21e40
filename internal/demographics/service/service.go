// Package service builds comparative demographic tables from census series.
package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"eqia_dashboard_backend/internal/demographics/census"
	"eqia_dashboard_backend/internal/demographics/transport"
	"eqia_dashboard_backend/internal/nomis"
	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/apperr"
	"eqia_dashboard_backend/platform/logger"
)

// LocalStudyAreaName labels the aggregated station-ward area in tables.
const LocalStudyAreaName = "Local Study Area"

type Service struct {
	reg     *registry.Registry
	fetcher nomis.Fetcher
	log     *logger.Logger
}

func New(reg *registry.Registry, fetcher nomis.Fetcher, log *logger.Logger) *Service {
	return &Service{reg: reg, fetcher: fetcher, log: log}
}

// Stations lists stations with their ward names in registry order.
func (s *Service) Stations() []transport.StationSummary {
	stations := s.reg.Stations()
	out := make([]transport.StationSummary, 0, len(stations))
	for _, st := range stations {
		wards := make([]string, 0, len(st.Wards))
		for _, w := range st.Wards {
			wards = append(wards, w.Name)
		}
		out = append(out, transport.StationSummary{Name: st.Name, Wards: wards})
	}
	return out
}

// AggregateLSA fetches the dataset for every ward of the station in parallel
// and averages the raw series position by position. Wards whose fetch fails
// or returns no data are dropped from the average rather than failing the
// whole aggregation. A position is nil in the result when any contributing
// ward is nil there. Returns nil when no ward produced data.
func (s *Service) AggregateLSA(ctx context.Context, station registry.Station, ds registry.Dataset) []*float64 {
	results := make([][]*float64, len(station.Wards))

	g, gctx := errgroup.WithContext(ctx)
	for i, ward := range station.Wards {
		g.Go(func() error {
			raw, err := s.fetcher.FetchValues(gctx, ds.ID, ward.AreaCode, ds.Filter)
			if err != nil {
				s.log.UpstreamError("nomis", ward.AreaCode, err)
				return nil
			}
			results[i] = raw
			return nil
		})
	}
	// Goroutines never return errors; Wait only joins them.
	_ = g.Wait()

	var series [][]*float64
	for _, raw := range results {
		if len(raw) > 0 {
			series = append(series, raw)
		}
	}
	if len(series) == 0 {
		return nil
	}
	if len(series) == 1 {
		return series[0]
	}

	// Ward series for the same dataset should share a length. When they do
	// not, average over the shortest common prefix.
	minLen := len(series[0])
	for _, raw := range series[1:] {
		if len(raw) < minLen {
			minLen = len(raw)
		}
	}
	for _, raw := range series {
		if len(raw) != minLen {
			s.log.Warn("ward series length mismatch, truncating",
				"station", station.Name, "dataset", ds.ID,
				"got", len(raw), "using", minLen)
			break
		}
	}

	out := make([]*float64, minLen)
	for i := 0; i < minLen; i++ {
		sum := 0.0
		ok := true
		for _, raw := range series {
			if raw[i] == nil {
				ok = false
				break
			}
			sum += *raw[i]
		}
		if ok {
			mean := sum / float64(len(series))
			out[i] = &mean
		}
	}
	return out
}

// BuildTable assembles the comparative table for one station and dimension:
// the aggregated local study area alongside each comparison area, in long
// form with the "Total" category dropped. The table is unavailable only when
// every area's extraction failed.
func (s *Service) BuildTable(ctx context.Context, stationName string, dim census.Dimension) (*transport.ComparativeTable, error) {
	const op = "demographics.BuildTable"

	station, ok := s.reg.Station(stationName)
	if !ok {
		return nil, apperr.NotFound(fmt.Sprintf("unknown station %q", stationName)).WithOp(op)
	}
	if !dim.Valid() {
		return nil, apperr.BadRequest(fmt.Sprintf("unsupported dimension %q", dim)).WithOp(op)
	}
	ds, ok := s.reg.Dataset(string(dim))
	if !ok {
		return nil, apperr.Internal(fmt.Sprintf("no dataset registered for dimension %q", dim)).WithOp(op)
	}
	categories, _ := census.Taxonomy(dim)
	areas := s.reg.ComparisonAreas()

	// Slot 0 is the local study area, then the comparison areas in order.
	extracted := make([]census.Series, 1+len(areas))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw := s.AggregateLSA(gctx, station, ds)
		extracted[0] = census.ExtractPercentages(raw, len(categories))
		return nil
	})
	for i, area := range areas {
		g.Go(func() error {
			raw, err := s.fetcher.FetchValues(gctx, ds.ID, area.AreaCode, ds.Filter)
			if err != nil {
				s.log.UpstreamError("nomis", area.AreaCode, err)
				return nil
			}
			extracted[1+i] = census.ExtractPercentages(raw, len(categories))
			return nil
		})
	}
	_ = g.Wait()

	anyAvailable := false
	for _, series := range extracted {
		if series.Available {
			anyAvailable = true
			break
		}
	}
	if !anyAvailable {
		return nil, apperr.Unavailable(fmt.Sprintf("%s data not available for this station yet", dim)).WithOp(op)
	}

	areaNames := make([]string, 0, 1+len(areas))
	areaNames = append(areaNames, LocalStudyAreaName)
	for _, area := range areas {
		areaNames = append(areaNames, area.Name)
	}

	table := &transport.ComparativeTable{
		Station:    station.Name,
		Dimension:  string(dim),
		Areas:      areaNames,
		Categories: categories[1:],
	}
	for ai, areaName := range areaNames {
		series := extracted[ai]
		for ci := 1; ci < len(categories); ci++ {
			table.Rows = append(table.Rows, transport.TableRow{
				Area:       areaName,
				Category:   categories[ci],
				Percentage: series.At(ci),
			})
		}
	}

	if dim == census.DimensionAge {
		table.BroadBands = buildBroadBands(areaNames, categories, extracted)
	}
	return table, nil
}

// buildBroadBands rolls the detailed age bands up into the fixed broad bands,
// summing percentages per area. A band is nil for an area when any of its
// constituent categories is missing there.
func buildBroadBands(areaNames, categories []string, extracted []census.Series) []transport.BroadBandRow {
	index := make(map[string]int, len(categories))
	for i, cat := range categories {
		index[cat] = i
	}

	var rows []transport.BroadBandRow
	for ai, areaName := range areaNames {
		series := extracted[ai]
		for _, band := range census.AgeBroadBands() {
			sum := 0.0
			ok := true
			for _, cat := range band.Bands {
				v := series.At(index[cat])
				if v == nil {
					ok = false
					break
				}
				sum += *v
			}
			row := transport.BroadBandRow{Area: areaName, Band: band.Name}
			if ok {
				row.Percentage = &sum
			}
			rows = append(rows, row)
		}
	}
	return rows
}
