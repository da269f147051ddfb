// Package servicecenters exposes the static coverage table the booking form
// feeds from. Option lists (districts for a region, areas for a district)
// are derived by pure lookups on every call; nothing here is mutable state.
package servicecenters

import (
	"encoding/json"
	"fmt"
	"os"

	"mirpur-express/internal/models"
)

// Catalog is an immutable snapshot of the service-center table.
type Catalog struct {
	centers []models.ServiceCenter
}

// Load reads the catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("servicecenters.Load: %w", err)
	}
	var centers []models.ServiceCenter
	if err := json.Unmarshal(raw, &centers); err != nil {
		return nil, fmt.Errorf("servicecenters.Load: parse %s: %w", path, err)
	}
	return New(centers), nil
}

// New wraps an in-memory center list, mainly for tests.
func New(centers []models.ServiceCenter) *Catalog {
	return &Catalog{centers: centers}
}

// Regions returns the distinct regions in table order.
func (c *Catalog) Regions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, sc := range c.centers {
		if !seen[sc.Region] {
			seen[sc.Region] = true
			regions = append(regions, sc.Region)
		}
	}
	return regions
}

// Districts returns the distinct districts under a region, in table order.
// An unknown region yields an empty list.
func (c *Catalog) Districts(region string) []string {
	seen := make(map[string]bool)
	var districts []string
	for _, sc := range c.centers {
		if sc.Region != region || seen[sc.District] {
			continue
		}
		seen[sc.District] = true
		districts = append(districts, sc.District)
	}
	return districts
}

// CoveredAreas returns the areas served under a region/district pair. The
// first matching row wins, mirroring how the form resolves its area options.
func (c *Catalog) CoveredAreas(region, district string) []string {
	for _, sc := range c.centers {
		if sc.Region == region && sc.District == district {
			areas := make([]string, len(sc.CoveredArea))
			copy(areas, sc.CoveredArea)
			return areas
		}
	}
	return nil
}

// HasDistrict reports whether any service center serves the district.
func (c *Catalog) HasDistrict(district string) bool {
	for _, sc := range c.centers {
		if sc.District == district {
			return true
		}
	}
	return false
}

// Centers returns a copy of the full table, for coverage displays.
func (c *Catalog) Centers() []models.ServiceCenter {
	out := make([]models.ServiceCenter, len(c.centers))
	copy(out, c.centers)
	return out
}
