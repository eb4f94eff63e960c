package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
)

// MemoryStore is an in-process implementation of RoomStore,
// BookingStore and ReviewStore backed by maps.  It mirrors the Mongo
// repositories' error contract (ErrInvalidID, ErrRoomNotFound,
// ErrBookingNotFound) so handlers behave identically in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	rooms    map[string]model.Room
	bookings map[string]model.Booking
	reviews  []model.Review
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:    make(map[string]model.Room),
		bookings: make(map[string]model.Booking),
	}
}

// SeedRoom inserts a room with a fresh id and returns it.  Rooms have
// no create route, so tests seed them directly.
func (s *MemoryStore) SeedRoom(room model.Room) model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	room.ID = primitive.NewObjectID()
	s.rooms[room.ID.Hex()] = room
	return room
}

// List filters seeded rooms by price range.
func (s *MemoryStore) List(ctx context.Context, f RoomFilter) ([]model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, 0)
	for _, room := range s.rooms {
		if f.MinPrice != nil && room.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && room.Price > *f.MaxPrice {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

// GetByID fetches a seeded room.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*model.Room, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return &room, nil
}

// UpdateAvailability flips the availability flag of a seeded room.
func (s *MemoryStore) UpdateAvailability(ctx context.Context, id string, available bool) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return ErrRoomNotFound
	}
	room.Availability = available
	s.rooms[id] = room
	return nil
}

// ListByUserEmail returns bookings owned by email.
func (s *MemoryStore) ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Booking, 0)
	for _, b := range s.bookings {
		if b.UserEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

// Create stores the booking under a fresh id.
func (s *MemoryStore) Create(ctx context.Context, b *model.Booking) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = primitive.NewObjectID()
	s.bookings[b.ID.Hex()] = *b
	return b.ID.Hex(), nil
}

// UpdateDate overwrites only the bookingDate of a stored booking.
func (s *MemoryStore) UpdateDate(ctx context.Context, id, bookingDate string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.BookingDate = bookingDate
	s.bookings[id] = b
	return nil
}

// Delete removes a stored booking.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

// ListAll returns every stored review.
func (s *MemoryStore) ListAll(ctx context.Context) ([]model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

// ListByRoom returns reviews whose roomId matches exactly.
func (s *MemoryStore) ListByRoom(ctx context.Context, roomID string) ([]model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Review, 0)
	for _, r := range s.reviews {
		if r.RoomID == roomID {
			out = append(out, r)
		}
	}
	return out, nil
}

// CreateReview appends the review under a fresh id.  The method name
// differs from BookingStore.Create so one MemoryStore can satisfy
// both interfaces; the ReviewStore interface is implemented by the
// reviewStoreAdapter below.
func (s *MemoryStore) CreateReview(ctx context.Context, r *model.Review) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, *r)
	return r.ID.Hex(), nil
}

// Reviews returns a ReviewStore view over the MemoryStore.
func (s *MemoryStore) Reviews() ReviewStore {
	return reviewStoreAdapter{s}
}

type reviewStoreAdapter struct {
	*MemoryStore
}

func (a reviewStoreAdapter) Create(ctx context.Context, r *model.Review) (string, error) {
	return a.MemoryStore.CreateReview(ctx, r)
}
