package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a guest review tied to a booking, stored in the
// `reviews` collection.  BookingID references a booking and RoomID a
// room, both as unenforced hex strings; RoomID drives the per-room
// listing route.  Reviews are never updated or deleted through this
// API.
//
// Fields:
//  ID        – Mongo ObjectID, generated by the store.
//  BookingID – hex id of the booking being reviewed.
//  RoomID    – hex id of the reviewed room.
//  UserEmail – optional reviewer email echoed back to clients.
//  Rating    – numeric rating supplied by the client.
//  Comment   – review text.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookingID string             `bson:"bookingId" json:"bookingId"`
	RoomID    string             `bson:"roomId,omitempty" json:"roomId,omitempty"`
	UserEmail string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	Rating    float64            `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
}
