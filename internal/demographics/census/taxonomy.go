package census

// Dimension is a demographic category axis served by the pipeline.
type Dimension string

const (
	DimensionAge       Dimension = "age"
	DimensionGender    Dimension = "gender"
	DimensionEthnicity Dimension = "ethnicity"
	DimensionReligion  Dimension = "religion"
)

// Dimensions lists the supported dimensions in display order.
func Dimensions() []Dimension {
	return []Dimension{DimensionAge, DimensionGender, DimensionEthnicity, DimensionReligion}
}

// Valid reports whether d is a supported dimension.
func (d Dimension) Valid() bool {
	_, ok := taxonomies[d]
	return ok
}

// Each taxonomy is ordered as NOMIS returns it and starts with the implicit
// "Total" category, which is excluded from output rows.
var taxonomies = map[Dimension][]string{
	DimensionAge: {
		"Total",
		"0-4", "5-9", "10-15", "16-19", "20-24", "25-34",
		"35-49", "50-64", "65-74", "75-84", "85+",
	},
	DimensionGender: {
		"Total",
		"Female",
		"Male",
	},
	DimensionEthnicity: {
		"Total",
		"Asian, Asian British or Asian Welsh",
		"Black, Black British, Black Welsh, Caribbean or African",
		"Mixed or Multiple ethnic groups",
		"White",
		"Other ethnic group",
	},
	DimensionReligion: {
		"Total",
		"No religion",
		"Christian",
		"Buddhist",
		"Hindu",
		"Jewish",
		"Muslim",
		"Sikh",
		"Other religion",
		"Not answered",
	},
}

// Taxonomy returns the ordered category list (including "Total") for d.
func Taxonomy(d Dimension) ([]string, bool) {
	cats, ok := taxonomies[d]
	if !ok {
		return nil, false
	}
	out := make([]string, len(cats))
	copy(out, cats)
	return out, true
}

// BroadBand is a fixed rollup of detailed age bands.
type BroadBand struct {
	Name  string
	Bands []string
}

// ageBroadBands is the fixed child / working-age / older partition of the age
// taxonomy. It is intentionally not configurable.
var ageBroadBands = []BroadBand{
	{Name: "0-15", Bands: []string{"0-4", "5-9", "10-15"}},
	{Name: "16-64", Bands: []string{"16-19", "20-24", "25-34", "35-49", "50-64"}},
	{Name: "65+", Bands: []string{"65-74", "75-84", "85+"}},
}

// AgeBroadBands returns the fixed broad age groupings.
func AgeBroadBands() []BroadBand {
	out := make([]BroadBand, len(ageBroadBands))
	copy(out, ageBroadBands)
	return out
}
