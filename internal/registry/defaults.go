package registry

// Default returns the built-in reference tables for the Bakerloo line
// extension study area. A stations YAML file can replace these at startup.
func Default() *Registry {
	file := registryFile{
		Stations: []Station{
			{Name: "Lambeth North", Wards: []Ward{
				{Name: "Waterloo and South Bank", AreaCode: "641735110"},
				{Name: "Borough and Bankside", AreaCode: "641732386"},
				{Name: "Kennington", AreaCode: "641735097"},
				{Name: "St George's", AreaCode: "641732405"},
				{Name: "Chaucer", AreaCode: "641732389"},
				{Name: "North Walworth", AreaCode: "641732396"},
			}},
			{Name: "London Road", Wards: []Ward{
				{Name: "Waterloo and South Bank", AreaCode: "641735110"},
				{Name: "St George's", AreaCode: "641732405"},
				{Name: "Borough and Bankside", AreaCode: "641732386"},
				{Name: "Kennington", AreaCode: "641735097"},
			}},
			{Name: "Elephant & Castle", Wards: []Ward{
				{Name: "St George's", AreaCode: "641732405"},
				{Name: "Kennington", AreaCode: "641735097"},
				{Name: "Newington", AreaCode: "641732396"},
				{Name: "North Walworth", AreaCode: "641732396"},
				{Name: "Chaucer", AreaCode: "641732389"},
				{Name: "Borough and Bankside", AreaCode: "641732386"},
			}},
			{Name: "Burgess Park", Wards: []Ward{
				{Name: "North Walworth", AreaCode: "641732396"},
				{Name: "Faraday", AreaCode: "641732393"},
				{Name: "Old Kent Road", AreaCode: "641732399"},
				{Name: "South Bermondsey", AreaCode: "641732407"},
				{Name: "London Bridge & West Bermondsey", AreaCode: "641732395"},
			}},
			{Name: "Old Kent Road", Wards: []Ward{
				{Name: "Old Kent Road", AreaCode: "641732399"},
				{Name: "Peckham", AreaCode: "641732400"},
				{Name: "Nunhead & Queen's Road", AreaCode: "641732398"},
				{Name: "Telegraph Hill", AreaCode: "641734724"},
			}},
			{Name: "New Cross Gate", Wards: []Ward{
				{Name: "New Cross", AreaCode: "641734720"},
				{Name: "Telegraph Hill", AreaCode: "641734724"},
				{Name: "Brockley", AreaCode: "641734708"},
				{Name: "Deptford", AreaCode: "641734711"},
			}},
			{Name: "Lewisham Way Shaft", Wards: []Ward{
				{Name: "Brockley", AreaCode: "641734708"},
				{Name: "Deptford", AreaCode: "641734711"},
				{Name: "Lewisham", AreaCode: "641734716"},
			}},
			{Name: "Lewisham", Wards: []Ward{
				{Name: "Ladywell", AreaCode: "641734716"},
				{Name: "Lewisham Central", AreaCode: "641734719"},
				{Name: "Greenwich Park", AreaCode: "641735073"},
				{Name: "Blackheath", AreaCode: "641735074"},
			}},
			{Name: "Wearside Road", Wards: []Ward{
				{Name: "Ladywell", AreaCode: "641734716"},
				{Name: "Lewisham Central", AreaCode: "641734719"},
				{Name: "Lee Green", AreaCode: "641734718"},
			}},
		},
		ComparisonAreas: []ComparisonArea{
			{Name: "Southwark", AreaCode: "1778385187"},
			{Name: "London", AreaCode: "2013265927"},
			{Name: "England", AreaCode: "2092957699"},
		},
		Datasets: map[string]Dataset{
			"age": {
				ID:     "NM_2018_1",
				Filter: map[string]string{"c2021_age_12a": "0...11"},
			},
			"ethnicity": {
				ID:     "NM_2041_1",
				Filter: map[string]string{"c2021_eth_20": "0,1001...1005"},
			},
			"religion": {
				ID:     "NM_2049_1",
				Filter: map[string]string{"c2021_religion_10": "0...9"},
			},
			"gender": {
				ID: "NM_2023_1",
			},
		},
		Boroughs: []string{"Lambeth", "Southwark", "Lewisham", "Greenwich"},
	}

	reg, err := build(file)
	if err != nil {
		// Defaults are compile-time data; a failure here is a programming error.
		panic("registry defaults invalid: " + err.Error())
	}
	return reg
}
