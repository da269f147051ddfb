package models

// ServiceCenter is one row of the static coverage table. It only feeds
// selectable options (region, district, covered area); pricing compares the
// chosen district strings directly.
type ServiceCenter struct {
	Region      string   `json:"region"`
	District    string   `json:"district"`
	City        string   `json:"city,omitempty"`
	CoveredArea []string `json:"covered_area"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
}
