// Package parcels orchestrates parcel bookings: it validates the sender's
// input, prices it, stamps a tracking id and submits the assembled booking
// to the remote parcel-storage API in a single POST. The client never holds
// authoritative parcel state; reads always go back to the API.
package parcels

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"mirpur-express/internal/models"
	"mirpur-express/internal/modules/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// API is the slice of the remote parcel-storage API this module uses.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Identity supplies the submitter recorded as createdBy on bookings.
type Identity interface {
	Email() string
}

// Service implements the booking coordination logic.
type Service struct {
	api      API
	identity Identity
	validate *validator.Validate
	log      zerolog.Logger

	// swapped in tests
	now           func() time.Time
	newTrackingID func() string
}

// NewService creates a new booking service.
func NewService(api API, identity Identity, log zerolog.Logger) *Service {
	return &Service{
		api:           api,
		identity:      identity,
		validate:      validator.New(),
		log:           log,
		now:           time.Now,
		newTrackingID: NewTrackingID,
	}
}

// Receipt is what the caller displays after a confirmed booking.
type Receipt struct {
	TrackingID string
	Charge     pricing.Breakdown
}

type insertResult struct {
	InsertedID string `json:"insertedId"`
}

// Quote validates the pricing-relevant fields and returns the charge
// breakdown for the current form values. It is recomputed from the inputs
// on every call, never cached.
func (s *Service) Quote(req models.ParcelRequest) (pricing.Breakdown, error) {
	if req.ParcelType == models.ParcelTypeNonDocument && req.ParcelWeightKg <= 0 {
		return pricing.Breakdown{}, models.ErrWeightRequired
	}
	return pricing.Quote(req.ParcelType, req.ParcelWeightKg, req.SenderDistrict, req.ReceiverDistrict), nil
}

// Submit books a parcel. One outbound POST, no retry; a failed submission is
// fully recoverable by resubmitting, which generates a fresh tracking id.
func (s *Service) Submit(ctx context.Context, req models.ParcelRequest) (*Receipt, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("parcels.Submit: %w", err)
	}
	charge, err := s.Quote(req)
	if err != nil {
		return nil, fmt.Errorf("parcels.Submit: %w", err)
	}

	booking := models.Booking{
		ParcelRequest:  req,
		TrackingID:     s.newTrackingID(),
		DeliveryCharge: charge.Total,
		CreatedBy:      s.identity.Email(),
		PaymentStatus:  models.PaymentStatusUnpaid,
		DeliveryStatus: models.DeliveryStatusNotCollected,
		CreationDate:   s.now().UTC().Format(time.RFC3339),
	}

	var res insertResult
	if err := s.api.Post(ctx, "/parcels", booking, &res); err != nil {
		return nil, fmt.Errorf("parcels.Submit: %w", err)
	}
	if res.InsertedID == "" {
		return nil, models.ErrNoInsertedID
	}

	s.log.Info().
		Str("tracking_id", booking.TrackingID).
		Float64("delivery_charge", charge.Total).
		Msg("parcel booked")

	return &Receipt{TrackingID: booking.TrackingID, Charge: charge}, nil
}

// ListMine fetches the caller's own parcels.
func (s *Service) ListMine(ctx context.Context) ([]models.Parcel, error) {
	q := url.Values{"email": {s.identity.Email()}}
	var out []models.Parcel
	if err := s.api.Get(ctx, "/parcels?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("parcels.ListMine: %w", err)
	}
	return out, nil
}

// Get fetches a single parcel record by its storage id.
func (s *Service) Get(ctx context.Context, parcelID string) (*models.Parcel, error) {
	var out models.Parcel
	if err := s.api.Get(ctx, "/parcels/"+url.PathEscape(parcelID), &out); err != nil {
		return nil, fmt.Errorf("parcels.Get: %w", err)
	}
	return &out, nil
}

// Remove deletes an unpaid parcel the user no longer wants to send.
func (s *Service) Remove(ctx context.Context, parcelID string) error {
	if err := s.api.Delete(ctx, "/parcels/"+url.PathEscape(parcelID)); err != nil {
		return fmt.Errorf("parcels.Remove: %w", err)
	}
	return nil
}
