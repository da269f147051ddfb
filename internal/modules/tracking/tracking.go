// Package tracking reads and appends a parcel's delivery history, keyed by
// the client-generated tracking id.
package tracking

import (
	"context"
	"fmt"
	"net/url"

	"mirpur-express/internal/models"
	"mirpur-express/internal/modules/parcels"
)

// API is the slice of the remote API used for tracking.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Service logs and looks up tracking events.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Log appends a lifecycle update. A failed log is reported to the caller,
// who decides whether to surface it; it must never abort the flow that
// produced it, since status changes already happened on the server.
func (s *Service) Log(ctx context.Context, ev models.TrackingEvent) error {
	if err := s.api.Post(ctx, "/trackings", ev, nil); err != nil {
		return fmt.Errorf("tracking.Log: %w", err)
	}
	return nil
}

// History fetches the event list for a tracking id. The format is checked
// first so obvious typos never hit the API.
func (s *Service) History(ctx context.Context, trackingID string) ([]models.TrackingEvent, error) {
	if !parcels.ValidTrackingID(trackingID) {
		return nil, models.ErrBadTrackingID
	}
	var out []models.TrackingEvent
	if err := s.api.Get(ctx, "/trackings/"+url.PathEscape(trackingID), &out); err != nil {
		return nil, fmt.Errorf("tracking.History: %w", err)
	}
	return out, nil
}
