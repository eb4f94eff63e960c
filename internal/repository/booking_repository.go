package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
)

// BookingRepo implements BookingStore on top of the `bookings`
// collection.
type BookingRepo struct {
	col *mongo.Collection
}

// NewBookingRepo constructs a BookingRepo with the provided
// collection handle.
func NewBookingRepo(col *mongo.Collection) *BookingRepo {
	return &BookingRepo{col: col}
}

// ListByUserEmail returns all bookings whose userEmail equals email.
func (r *BookingRepo) ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error) {
	cur, err := r.col.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	out := make([]model.Booking, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts the booking and returns the generated ObjectID as a
// hex string.  The referenced room is not checked for existence.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) (string, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// InsertOne always yields an ObjectID for documents
		// without a client-supplied _id.
		return "", ErrInvalidID
	}
	b.ID = oid
	return oid.Hex(), nil
}

// UpdateDate performs a partial update touching only bookingDate.
func (r *BookingRepo) UpdateDate(ctx context.Context, id, bookingDate string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"bookingDate": bookingDate}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete removes one booking by id.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
