package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRegistryStations(t *testing.T) {
	reg := Default()

	st, ok := reg.Station("Lewisham Way Shaft")
	if !ok {
		t.Fatalf("expected station %q to exist", "Lewisham Way Shaft")
	}
	if len(st.Wards) != 3 {
		t.Fatalf("expected 3 wards, got %d", len(st.Wards))
	}
	codes := []string{"641734708", "641734711", "641734716"}
	for i, want := range codes {
		if st.Wards[i].AreaCode != want {
			t.Fatalf("expected ward %d code %q, got %q", i, want, st.Wards[i].AreaCode)
		}
	}
}

func TestDefaultRegistryComparisonAreaOrder(t *testing.T) {
	reg := Default()

	areas := reg.ComparisonAreas()
	if len(areas) != 3 {
		t.Fatalf("expected 3 comparison areas, got %d", len(areas))
	}
	wantNames := []string{"Southwark", "London", "England"}
	for i, want := range wantNames {
		if areas[i].Name != want {
			t.Fatalf("expected area %d to be %q, got %q", i, want, areas[i].Name)
		}
	}
}

func TestDefaultRegistryDatasets(t *testing.T) {
	reg := Default()

	ds, ok := reg.Dataset("ethnicity")
	if !ok {
		t.Fatalf("expected ethnicity dataset")
	}
	if ds.ID != "NM_2041_1" {
		t.Fatalf("expected dataset NM_2041_1, got %q", ds.ID)
	}
	if ds.Filter["c2021_eth_20"] != "0,1001...1005" {
		t.Fatalf("unexpected ethnicity filter: %v", ds.Filter)
	}

	if _, ok := reg.Dataset("deprivation"); ok {
		t.Fatalf("deprivation is CSV-backed and must not have a NOMIS dataset")
	}
}

func TestLoadFromYAML(t *testing.T) {
	content := `
stations:
  - name: Test Station
    wards:
      - name: Ward One
        areaCode: "123"
comparisonAreas:
  - name: Borough
    areaCode: "1"
  - name: Region
    areaCode: "2"
  - name: Country
    areaCode: "3"
datasets:
  age:
    id: NM_2018_1
boroughs: [Borough]
`
	path := filepath.Join(t.TempDir(), "stations.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if _, ok := reg.Station("Test Station"); !ok {
		t.Fatalf("expected Test Station in registry")
	}
	if got := len(reg.ComparisonAreas()); got != 3 {
		t.Fatalf("expected 3 areas, got %d", got)
	}
}

func TestLoadRejectsWrongAreaCount(t *testing.T) {
	content := `
stations:
  - name: Test Station
    wards:
      - name: Ward One
        areaCode: "123"
comparisonAreas:
  - name: Borough
    areaCode: "1"
`
	path := filepath.Join(t.TempDir(), "stations.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for wrong comparison area count")
	}
}
