// Package registry holds the static geographic reference tables: stations and
// their wards, the fixed comparison areas, and the NOMIS dataset identifiers
// per demographic dimension. The registry is loaded once at startup and passed
// explicitly to the pipeline; it is never mutated afterwards.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eqia_dashboard_backend/platform/validator"
)

// Ward is a single administrative ward with its NOMIS geography code.
// Wards may appear in more than one station's catchment.
type Ward struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	AreaCode string `yaml:"areaCode" json:"areaCode" validate:"required,numeric"`
}

// Station is a named station with its ordered ward list. Ward order is
// insertion order and only affects display.
type Station struct {
	Name  string `yaml:"name" json:"name" validate:"required"`
	Wards []Ward `yaml:"wards" json:"wards" validate:"required,min=1,dive"`
}

// ComparisonArea is one of the three fixed reference geographies.
type ComparisonArea struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	AreaCode string `yaml:"areaCode" json:"areaCode" validate:"required,numeric"`
}

// Dataset identifies a NOMIS dataset and the cell filter it needs.
type Dataset struct {
	ID     string            `yaml:"id" json:"id" validate:"required"`
	Filter map[string]string `yaml:"filter,omitempty" json:"filter,omitempty"`
}

// Registry is the immutable lookup table for the pipeline.
type Registry struct {
	stations     map[string]Station
	stationOrder []string
	areas        []ComparisonArea
	datasets     map[string]Dataset
	boroughs     []string
}

type registryFile struct {
	Stations        []Station          `yaml:"stations" validate:"required,min=1,dive"`
	ComparisonAreas []ComparisonArea   `yaml:"comparisonAreas" validate:"required,len=3,dive"`
	Datasets        map[string]Dataset `yaml:"datasets" validate:"required,min=1,dive"`
	Boroughs        []string           `yaml:"boroughs" validate:"required,min=1"`
}

// Load builds the registry from a YAML file, or from the compiled-in defaults
// when path is empty.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stations file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse stations file: %w", err)
	}

	return build(file)
}

func build(file registryFile) (*Registry, error) {
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	reg := &Registry{
		stations: make(map[string]Station, len(file.Stations)),
		areas:    file.ComparisonAreas,
		datasets: file.Datasets,
		boroughs: file.Boroughs,
	}
	for _, st := range file.Stations {
		if _, dup := reg.stations[st.Name]; dup {
			return nil, fmt.Errorf("duplicate station %q", st.Name)
		}
		reg.stations[st.Name] = st
		reg.stationOrder = append(reg.stationOrder, st.Name)
	}

	return reg, nil
}

// Station looks up a station by name.
func (r *Registry) Station(name string) (Station, bool) {
	st, ok := r.stations[name]
	return st, ok
}

// Stations returns all stations in declaration order.
func (r *Registry) Stations() []Station {
	out := make([]Station, 0, len(r.stationOrder))
	for _, name := range r.stationOrder {
		out = append(out, r.stations[name])
	}
	return out
}

// ComparisonAreas returns the three fixed reference areas in canonical order
// (borough, city region, country).
func (r *Registry) ComparisonAreas() []ComparisonArea {
	out := make([]ComparisonArea, len(r.areas))
	copy(out, r.areas)
	return out
}

// Dataset looks up the NOMIS dataset for a logical dimension name.
func (r *Registry) Dataset(dimension string) (Dataset, bool) {
	ds, ok := r.datasets[dimension]
	return ds, ok
}

// Boroughs returns the boroughs covered by the study area, used by the
// CSV-backed reference views (homelessness, crime, population projections).
func (r *Registry) Boroughs() []string {
	out := make([]string, len(r.boroughs))
	copy(out, r.boroughs)
	return out
}
