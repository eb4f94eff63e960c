package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
)

// ReviewRepo implements ReviewStore on top of the `reviews`
// collection.
type ReviewRepo struct {
	col *mongo.Collection
}

// NewReviewRepo constructs a ReviewRepo with the provided collection
// handle.
func NewReviewRepo(col *mongo.Collection) *ReviewRepo {
	return &ReviewRepo{col: col}
}

// ListAll returns every review in the collection.
func (r *ReviewRepo) ListAll(ctx context.Context) ([]model.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]model.Review, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByRoom returns reviews matching roomID by exact string
// equality.  roomId is stored as a plain string, so no ObjectID
// parsing happens here.
func (r *ReviewRepo) ListByRoom(ctx context.Context, roomID string) ([]model.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{"roomId": roomID})
	if err != nil {
		return nil, err
	}
	out := make([]model.Review, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts the review and returns the generated id.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review) (string, error) {
	res, err := r.col.InsertOne(ctx, rev)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrInvalidID
	}
	rev.ID = oid
	return oid.Hex(), nil
}
