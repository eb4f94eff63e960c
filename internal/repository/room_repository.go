package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
)

// RoomRepo implements RoomStore on top of the `rooms` collection.
type RoomRepo struct {
	col *mongo.Collection
}

// NewRoomRepo constructs a RoomRepo with the provided collection
// handle.  The collection is injected so tests and startup own the
// client lifecycle.
func NewRoomRepo(col *mongo.Collection) *RoomRepo {
	return &RoomRepo{col: col}
}

// List returns all rooms matching the price range.  Absent bounds
// produce an empty filter, which matches every document.
func (r *RoomRepo) List(ctx context.Context, f RoomFilter) ([]model.Room, error) {
	filter := bson.M{}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]model.Room, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one room by its ObjectID hex string.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var room model.Room
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// UpdateAvailability sets only the availability field.  A zero
// matched count means the room does not exist; an unchanged value on
// an existing room still counts as success.
func (r *RoomRepo) UpdateAvailability(ctx context.Context, id string, available bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"availability": available}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRoomNotFound
	}
	return nil
}
