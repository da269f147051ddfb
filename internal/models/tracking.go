package models

import "time"

// TrackingEvent is one entry in a parcel's delivery history, keyed by the
// client-generated tracking id.
type TrackingEvent struct {
	ID         string    `json:"_id,omitempty"`
	TrackingID string    `json:"trackingId" validate:"required"`
	Status     string    `json:"status" validate:"required"`
	Details    string    `json:"details,omitempty"`
	UpdatedBy  string    `json:"updatedBy,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
