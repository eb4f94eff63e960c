// Package repository defines error values shared across the store
// implementations.  These sentinels let handlers pick the right HTTP
// status without inspecting driver-specific errors: ErrInvalidID maps
// to 400, the not-found values map to 404, anything else is a 500.
package repository

import "errors"

// ErrInvalidID is returned when a path or payload identifier is not a
// well-formed ObjectID hex string.
var ErrInvalidID = errors.New("invalid id")

// ErrRoomNotFound is returned when a room lookup or availability
// update matches no document.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking update or delete
// matches no document.
var ErrBookingNotFound = errors.New("booking not found")
