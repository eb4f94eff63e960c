package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/repository"
)

type reviewListResp struct {
	Items []model.Review `json:"items"`
}

func newReviewHandler() (*ReviewHandler, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return NewReviewHandler(store.Reviews(), zerolog.Nop()), store
}

func TestCreateReview(t *testing.T) {
	h, store := newReviewHandler()

	t.Run("MissingFields", func(t *testing.T) {
		bodies := map[string]string{
			"NoBookingID": `{"rating": 5, "comment": "great"}`,
			"NoRating":    `{"bookingId": "b1", "comment": "great"}`,
			"NoComment":   `{"bookingId": "b1", "rating": 5}`,
		}
		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				c, rec := newContext(t, http.MethodPost, "/reviews", body)
				require.NoError(t, h.CreateReview(c))
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
		got, err := store.ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Success", func(t *testing.T) {
		body := `{"bookingId": "b1", "roomId": "r1", "rating": 4.5, "comment": "lovely stay"}`
		c, rec := newContext(t, http.MethodPost, "/reviews", body)
		require.NoError(t, h.CreateReview(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp createResp
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.ID)

		got, err := store.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 4.5, got[0].Rating)
		assert.Equal(t, "lovely stay", got[0].Comment)
	})
}

func TestListReviews(t *testing.T) {
	h, store := newReviewHandler()
	for _, r := range []model.Review{
		{BookingID: "b1", RoomID: "room-1", Rating: 5, Comment: "spotless"},
		{BookingID: "b2", RoomID: "room-2", Rating: 3, Comment: "noisy"},
		{BookingID: "b3", RoomID: "room-1", Rating: 4, Comment: "good value"},
	} {
		r := r
		_, err := store.CreateReview(context.Background(), &r)
		require.NoError(t, err)
	}

	t.Run("All", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/reviews", "")
		require.NoError(t, h.ListReviews(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp reviewListResp
		decodeBody(t, rec, &resp)
		assert.Len(t, resp.Items, 3)
	})

	t.Run("ByRoomExactMatch", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/reviews/room-1", "")
		c.SetPath("/reviews/:roomId")
		c.SetParamNames("roomId")
		c.SetParamValues("room-1")
		require.NoError(t, h.ListRoomReviews(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp reviewListResp
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Items, 2)
		for _, r := range resp.Items {
			assert.Equal(t, "room-1", r.RoomID)
		}
	})

	t.Run("UnknownRoomIsEmpty", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/reviews/room-9", "")
		c.SetPath("/reviews/:roomId")
		c.SetParamNames("roomId")
		c.SetParamValues("room-9")
		require.NoError(t, h.ListRoomReviews(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp reviewListResp
		decodeBody(t, rec, &resp)
		assert.Empty(t, resp.Items)
	})
}
