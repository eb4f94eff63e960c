package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/repository"
)

type roomListResp struct {
	Items []model.Room `json:"items"`
}

func seededRoomHandler(t *testing.T) (*RoomHandler, *repository.MemoryStore, []model.Room) {
	t.Helper()
	store := repository.NewMemoryStore()
	rooms := []model.Room{
		store.SeedRoom(model.Room{Name: "Budget Single", Price: 40, Availability: true}),
		store.SeedRoom(model.Room{Name: "Double Deluxe", Price: 120, Availability: true}),
		store.SeedRoom(model.Room{Name: "Penthouse", Price: 400, Availability: false}),
	}
	return NewRoomHandler(store, zerolog.Nop()), store, rooms
}

func TestListRooms(t *testing.T) {
	h, _, _ := seededRoomHandler(t)

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"NoBounds", "", []string{"Budget Single", "Double Deluxe", "Penthouse"}},
		{"MinOnly", "?minPrice=100", []string{"Double Deluxe", "Penthouse"}},
		{"MaxOnly", "?maxPrice=120", []string{"Budget Single", "Double Deluxe"}},
		{"BothBounds", "?minPrice=50&maxPrice=200", []string{"Double Deluxe"}},
		{"InclusiveBounds", "?minPrice=40&maxPrice=400", []string{"Budget Single", "Double Deluxe", "Penthouse"}},
		{"EmptyRange", "?minPrice=500", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(t, http.MethodGet, "/rooms"+tc.query, "")
			require.NoError(t, h.ListRooms(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp roomListResp
			decodeBody(t, rec, &resp)
			names := make([]string, 0, len(resp.Items))
			for _, r := range resp.Items {
				names = append(names, r.Name)
			}
			assert.ElementsMatch(t, tc.want, names)
		})
	}

	t.Run("NonNumericMin", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/rooms?minPrice=cheap", "")
		require.NoError(t, h.ListRooms(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NonNumericMax", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/rooms?maxPrice=12x", "")
		require.NoError(t, h.ListRooms(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetRoom(t *testing.T) {
	h, _, rooms := seededRoomHandler(t)

	t.Run("Found", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/roomDetails/"+rooms[0].ID.Hex(), "")
		c.SetPath("/roomDetails/:id")
		c.SetParamNames("id")
		c.SetParamValues(rooms[0].ID.Hex())
		require.NoError(t, h.GetRoom(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Room
		decodeBody(t, rec, &got)
		assert.Equal(t, rooms[0].Name, got.Name)
		assert.Equal(t, rooms[0].Price, got.Price)
	})

	t.Run("MalformedID", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/roomDetails/abc", "")
		c.SetPath("/roomDetails/:id")
		c.SetParamNames("id")
		c.SetParamValues("abc")
		require.NoError(t, h.GetRoom(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing", func(t *testing.T) {
		id := primitive.NewObjectID().Hex()
		c, rec := newContext(t, http.MethodGet, "/roomDetails/"+id, "")
		c.SetPath("/roomDetails/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.GetRoom(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateAvailability(t *testing.T) {
	h, store, rooms := seededRoomHandler(t)

	patch := func(t *testing.T, id, body string) int {
		c, rec := newContext(t, http.MethodPatch, "/rooms/"+id+"/availability", body)
		c.SetPath("/rooms/:id/availability")
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.UpdateAvailability(c))
		return rec.Code
	}

	t.Run("Success", func(t *testing.T) {
		code := patch(t, rooms[0].ID.Hex(), `{"availability": false}`)
		assert.Equal(t, http.StatusOK, code)

		got, err := store.GetByID(context.Background(), rooms[0].ID.Hex())
		require.NoError(t, err)
		assert.False(t, got.Availability)
		// other fields untouched
		assert.Equal(t, rooms[0].Name, got.Name)
		assert.Equal(t, rooms[0].Price, got.Price)
	})

	t.Run("SameValueStillSucceeds", func(t *testing.T) {
		code := patch(t, rooms[1].ID.Hex(), `{"availability": true}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("MissingField", func(t *testing.T) {
		code := patch(t, rooms[0].ID.Hex(), `{}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("UnknownRoom", func(t *testing.T) {
		code := patch(t, primitive.NewObjectID().Hex(), `{"availability": true}`)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		code := patch(t, "zzz", `{"availability": true}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}
