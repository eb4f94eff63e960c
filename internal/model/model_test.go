package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The JSON field names are the API contract the booking client is
// built against; a renamed tag is a silent breaking change.
func TestDocumentFieldNames(t *testing.T) {
	t.Run("Room", func(t *testing.T) {
		raw, err := json.Marshal(Room{ID: primitive.NewObjectID(), Name: "Double Deluxe", Price: 120, Availability: true})
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		for _, key := range []string{"id", "name", "price", "availability"} {
			assert.Contains(t, m, key)
		}
		assert.NotContains(t, m, "description", "empty optional fields are omitted")
	})

	t.Run("Booking", func(t *testing.T) {
		raw, err := json.Marshal(Booking{UserEmail: "a@b.com", RoomID: "r1", BookingDate: "2026-09-01"})
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		for _, key := range []string{"userEmail", "roomId", "bookingDate"} {
			assert.Contains(t, m, key)
		}
		assert.NotContains(t, m, "guests", "zero optional fields are omitted")
	})

	t.Run("Review", func(t *testing.T) {
		raw, err := json.Marshal(Review{BookingID: "b1", RoomID: "r1", Rating: 4.5, Comment: "lovely"})
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		for _, key := range []string{"bookingId", "roomId", "rating", "comment"} {
			assert.Contains(t, m, key)
		}
	})
}
