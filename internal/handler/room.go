package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/repository"
)

// RoomHandler serves the room routes: listing with a price range,
// details by id and the availability toggle.
type RoomHandler struct {
	Rooms repository.RoomStore
	Log   zerolog.Logger
}

func NewRoomHandler(rooms repository.RoomStore, log zerolog.Logger) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Log: log}
}

// ListRooms handles GET /rooms?minPrice=&maxPrice=.  Either bound is
// optional; a bound that is present but not numeric is rejected with
// 400 rather than silently producing a filter that matches nothing.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	var filter repository.RoomFilter
	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "minPrice must be numeric"})
		}
		filter.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "maxPrice must be numeric"})
		}
		filter.MaxPrice = &v
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	rooms, err := h.Rooms.List(ctx, filter)
	if err != nil {
		return storeError(c, h.Log, "rooms.list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// GetRoom handles GET /roomDetails/:id.  A malformed id is a 400 and
// a well-formed id with no document behind it is a 404.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return storeError(c, h.Log, "rooms.get", err)
	}
	return c.JSON(http.StatusOK, room)
}

type availabilityReq struct {
	// Pointer so an absent field is distinguishable from `false`.
	Availability *bool `json:"availability"`
}

// UpdateAvailability handles PATCH /rooms/:id/availability.  Only the
// availability flag is touched; setting the current value again still
// succeeds.
func (h *RoomHandler) UpdateAvailability(c echo.Context) error {
	var req availabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Availability == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "availability required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Rooms.UpdateAvailability(ctx, c.Param("id"), *req.Availability); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return storeError(c, h.Log, "rooms.availability", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
