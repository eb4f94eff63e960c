// Package repository contains data access logic separated from HTTP
// handlers.  This file declares the store interfaces the handlers
// depend on.  The Mongo-backed implementations live next to them and
// memory.go provides an in-process implementation used by tests, so
// handlers never need a live database.
package repository

import (
	"context"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
)

// RoomFilter restricts a room listing to a price range.  A nil bound
// imposes no constraint on that side.
type RoomFilter struct {
	MinPrice *float64
	MaxPrice *float64
}

// RoomStore exposes the room operations the API needs.  Rooms are
// created by seed data, so there is no insert.
type RoomStore interface {
	// List returns all rooms matching the price filter.
	List(ctx context.Context, f RoomFilter) ([]model.Room, error)
	// GetByID fetches a single room.  Returns ErrInvalidID for a
	// malformed id and ErrRoomNotFound when no document matches.
	GetByID(ctx context.Context, id string) (*model.Room, error)
	// UpdateAvailability sets the availability flag of one room.
	// Returns ErrRoomNotFound when the id matches no document.
	UpdateAvailability(ctx context.Context, id string, available bool) error
}

// BookingStore exposes CRUD over the bookings collection.
type BookingStore interface {
	// ListByUserEmail returns every booking owned by email, in
	// natural store order.
	ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error)
	// Create inserts a booking and returns the generated id as a
	// hex string.
	Create(ctx context.Context, b *model.Booking) (string, error)
	// UpdateDate overwrites only the bookingDate field.  Returns
	// ErrBookingNotFound when the id matches no document.
	UpdateDate(ctx context.Context, id, bookingDate string) error
	// Delete removes a booking by id.  Returns ErrBookingNotFound
	// when the id matches no document.
	Delete(ctx context.Context, id string) error
}

// ReviewStore exposes the review operations.  Reviews are append-only
// through this API.
type ReviewStore interface {
	// ListAll returns every review.
	ListAll(ctx context.Context) ([]model.Review, error)
	// ListByRoom returns reviews whose roomId equals roomID exactly.
	ListByRoom(ctx context.Context, roomID string) ([]model.Review, error)
	// Create inserts a review and returns the generated id.
	Create(ctx context.Context, r *model.Review) (string, error)
}
