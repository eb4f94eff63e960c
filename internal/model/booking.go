package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking records that a user reserved a room for a date.  It lives
// in the `bookings` collection.  RoomID is a plain hex string and is
// not enforced as a foreign key; the store performs no referential
// integrity check.
//
// Fields:
//  ID          – Mongo ObjectID, generated by the store.
//  UserEmail   – email of the booking owner; compared against the
//                session email on the protected listing route.
//  RoomID      – hex id of the booked room.
//  BookingDate – date chosen by the client, stored as given.
//  RoomTitle   – optional denormalized room name sent by the client.
//  Price       – optional price snapshot at booking time.
//  Guests      – optional guest count.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	RoomID      string             `bson:"roomId" json:"roomId"`
	BookingDate string             `bson:"bookingDate" json:"bookingDate"`
	RoomTitle   string             `bson:"roomTitle,omitempty" json:"roomTitle,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Guests      int                `bson:"guests,omitempty" json:"guests,omitempty"`
}
