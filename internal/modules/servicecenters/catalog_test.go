package servicecenters

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mirpur-express/internal/models"
)

func testCatalog() *Catalog {
	return New([]models.ServiceCenter{
		{Region: "Dhaka", District: "Dhaka", CoveredArea: []string{"Mirpur-10", "Uttara", "Dhanmondi"}},
		{Region: "Dhaka", District: "Gazipur", CoveredArea: []string{"Tongi", "Sreepur"}},
		{Region: "Dhaka", District: "Narayanganj", CoveredArea: []string{"Fatullah"}},
		{Region: "Khulna", District: "Khulna", CoveredArea: []string{"Sonadanga", "Khalishpur"}},
		{Region: "Khulna", District: "Jashore", CoveredArea: []string{"Jashore Sadar"}},
	})
}

func TestRegionsAreUniqueAndOrdered(t *testing.T) {
	got := testCatalog().Regions()
	want := []string{"Dhaka", "Khulna"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Regions() = %v, want %v", got, want)
	}
}

func TestDistrictsFilterByRegion(t *testing.T) {
	c := testCatalog()
	got := c.Districts("Dhaka")
	want := []string{"Dhaka", "Gazipur", "Narayanganj"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Districts(Dhaka) = %v, want %v", got, want)
	}
	if got := c.Districts("Sylhet"); got != nil {
		t.Errorf("Districts(unknown region) = %v, want nil", got)
	}
}

func TestCoveredAreas(t *testing.T) {
	c := testCatalog()
	got := c.CoveredAreas("Khulna", "Khulna")
	want := []string{"Sonadanga", "Khalishpur"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CoveredAreas = %v, want %v", got, want)
	}
	if got := c.CoveredAreas("Dhaka", "Khulna"); got != nil {
		t.Errorf("CoveredAreas(mismatched pair) = %v, want nil", got)
	}

	// Mutating the returned slice must not leak into the catalog.
	got[0] = "changed"
	if c.CoveredAreas("Khulna", "Khulna")[0] != "Sonadanga" {
		t.Error("CoveredAreas returned the internal slice")
	}
}

func TestHasDistrict(t *testing.T) {
	c := testCatalog()
	if !c.HasDistrict("Gazipur") {
		t.Error("HasDistrict(Gazipur) = false")
	}
	if c.HasDistrict("Bogura") {
		t.Error("HasDistrict(Bogura) = true")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "centers.json")
	data := `[{"region":"Sylhet","district":"Sylhet","covered_area":["Zindabazar"]}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.HasDistrict("Sylhet") {
		t.Error("loaded catalog is missing Sylhet")
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
