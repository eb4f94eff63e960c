// Package queue defines message payloads exchanged over the message
// broker and the background consumer that drains them.
package queue

// BookingCreatedQueue is the broker queue carrying booking events.
const BookingCreatedQueue = "booking.created"

// BookingCreatedEvent is published after a booking is successfully
// inserted.  It carries enough information for downstream consumers
// to log or notify without querying the store.
type BookingCreatedEvent struct {
	BookingID   string `json:"booking_id"`
	UserEmail   string `json:"user_email"`
	RoomID      string `json:"room_id"`
	BookingDate string `json:"booking_date"`
	CreatedAt   string `json:"created_at"`
}
