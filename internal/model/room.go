package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Room represents a bookable hotel room stored in the `rooms`
// collection.  Rooms are seeded externally; this API only reads
// them and flips their availability flag.
//
// Fields:
//  ID           – Mongo ObjectID, generated by the store.
//  Name         – display name of the room.
//  Description  – free-form description shown on the details page.
//  Location     – hotel/city label.
//  Image        – URL of the cover photo.
//  Price        – price per night, used for range filtering.
//  Availability – whether the room can currently be booked.
type Room struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Availability bool               `bson:"availability" json:"availability"`
}
