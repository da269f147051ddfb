package emulator

import (
	"sort"
	"sync"
	"time"

	"mirpur-express/internal/models"

	"github.com/google/uuid"
)

// Store is the emulator's in-memory stand-in for the real storage system.
// It enforces the one constraint the client relies on: tracking ids are
// unique, and a colliding insert fails with a conflict instead of being
// papered over.
type Store struct {
	mu         sync.RWMutex
	parcels    map[string]*models.Parcel // record id -> parcel
	byTracking map[string]string         // tracking id -> record id
	events     map[string][]models.TrackingEvent
	roles      map[string]string // email -> role
}

func NewStore() *Store {
	return &Store{
		parcels:    make(map[string]*models.Parcel),
		byTracking: make(map[string]string),
		events:     make(map[string][]models.TrackingEvent),
		roles:      make(map[string]string),
	}
}

// InsertParcel stores a booking and returns the new record id.
func (s *Store) InsertParcel(b models.Booking) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byTracking[b.TrackingID]; taken {
		return "", models.ErrConflict
	}
	id := uuid.NewString()
	s.parcels[id] = &models.Parcel{ID: id, Booking: b}
	s.byTracking[b.TrackingID] = id
	return id, nil
}

// Parcel returns a copy of the record.
func (s *Store) Parcel(id string) (*models.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.parcels[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// ParcelsByCreator lists a user's parcels, newest first.
func (s *Store) ParcelsByCreator(email string) []models.Parcel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Parcel{}
	for _, p := range s.parcels {
		if p.CreatedBy == email {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreationDate > out[j].CreationDate })
	return out
}

func (s *Store) DeleteParcel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parcels[id]
	if !ok {
		return models.ErrNotFound
	}
	delete(s.byTracking, p.TrackingID)
	delete(s.parcels, id)
	return nil
}

// nextDeliveryStatus holds the only transitions the lifecycle allows.
var nextDeliveryStatus = map[string]string{
	models.DeliveryStatusNotCollected:  models.DeliveryStatusRiderAssigned,
	models.DeliveryStatusRiderAssigned: models.DeliveryStatusInTransit,
	models.DeliveryStatusInTransit:     models.DeliveryStatusCompleted,
}

// UpdateDeliveryStatus advances a parcel's delivery status. Only the single
// next step in the lifecycle is accepted.
func (s *Store) UpdateDeliveryStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parcels[id]
	if !ok {
		return models.ErrNotFound
	}
	if nextDeliveryStatus[p.DeliveryStatus] != status {
		return models.ErrBadStatusTransition
	}
	p.DeliveryStatus = status
	return nil
}

// AssignRider attaches a rider to a not-yet-collected parcel and moves it to
// Rider assigned.
func (s *Store) AssignRider(id, riderID, riderName, riderEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parcels[id]
	if !ok {
		return models.ErrNotFound
	}
	if p.DeliveryStatus != models.DeliveryStatusNotCollected {
		return models.ErrBadStatusTransition
	}
	p.RiderID = riderID
	p.RiderName = riderName
	p.RiderEmail = riderEmail
	p.DeliveryStatus = models.DeliveryStatusRiderAssigned
	return nil
}

// AppendEvent records a tracking event and returns its id.
func (s *Store) AppendEvent(ev models.TrackingEvent) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev.ID = uuid.NewString()
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	s.events[ev.TrackingID] = append(s.events[ev.TrackingID], ev)
	return ev.ID
}

// Events returns the event list for a tracking id in append order.
func (s *Store) Events(trackingID string) []models.TrackingEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	evs := s.events[trackingID]
	out := make([]models.TrackingEvent, len(evs))
	copy(out, evs)
	return out
}

func (s *Store) SetRole(email, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[email] = role
}

// Role returns the stored role, defaulting to a plain user. The default
// lives here, server-side; the client treats an absent answer as unknown.
func (s *Store) Role(email string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.roles[email]; ok {
		return r
	}
	return "user"
}
