package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/middleware"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/queue"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/repository"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/service"
)

// BookingHandler serves the booking CRUD routes.  Events is optional;
// when set, a booking.created message is published after each
// successful insertion without blocking the response.
type BookingHandler struct {
	Bookings repository.BookingStore
	Events   *service.Publisher
	Log      zerolog.Logger
}

func NewBookingHandler(bookings repository.BookingStore, events *service.Publisher, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Events: events, Log: log}
}

// ListBookings handles GET /bookings?email= behind the session
// guard.  The query email must equal the email the guard verified;
// anything else is a 401 so one user cannot read another's bookings.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	email := c.QueryParam("email")
	sessionEmail, _ := c.Get(middleware.EmailContextKey).(string)
	if sessionEmail == "" || sessionEmail != email {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized access"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	bookings, err := h.Bookings.ListByUserEmail(ctx, email)
	if err != nil {
		return storeError(c, h.Log, "bookings.list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}

type createBookingReq struct {
	UserEmail   string  `json:"userEmail"`
	RoomID      string  `json:"roomId"`
	BookingDate string  `json:"bookingDate"`
	RoomTitle   string  `json:"roomTitle"`
	Price       float64 `json:"price"`
	Guests      int     `json:"guests"`
}

// CreateBooking handles POST /bookings.  userEmail, roomId and
// bookingDate must all be present; nothing is inserted otherwise.
// The referenced room is not checked for existence or availability,
// matching the store's lack of referential integrity.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	req.RoomID = strings.TrimSpace(req.RoomID)
	req.BookingDate = strings.TrimSpace(req.BookingDate)
	if req.UserEmail == "" || req.RoomID == "" || req.BookingDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userEmail, roomId and bookingDate are required"})
	}

	booking := model.Booking{
		UserEmail:   req.UserEmail,
		RoomID:      req.RoomID,
		BookingDate: req.BookingDate,
		RoomTitle:   req.RoomTitle,
		Price:       req.Price,
		Guests:      req.Guests,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	id, err := h.Bookings.Create(ctx, &booking)
	if err != nil {
		return storeError(c, h.Log, "bookings.create", err)
	}

	if h.Events != nil {
		event := queue.BookingCreatedEvent{
			BookingID:   id,
			UserEmail:   booking.UserEmail,
			RoomID:      booking.RoomID,
			BookingDate: booking.BookingDate,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		// Fire and forget; a broker outage must not fail the booking.
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pubCancel()
			if err := h.Events.PublishBookingCreated(pubCtx, event); err != nil {
				h.Log.Warn().Err(err).Str("booking_id", id).Msg("booking event publish failed")
			}
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": id})
}

type updateBookingReq struct {
	BookingDate string `json:"bookingDate"`
}

// UpdateBooking handles PUT /bookings/:id, a partial update touching
// only the booking date.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.BookingDate = strings.TrimSpace(req.BookingDate)
	if req.BookingDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookingDate required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Bookings.UpdateDate(ctx, c.Param("id"), req.BookingDate); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return storeError(c, h.Log, "bookings.update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Bookings.Delete(ctx, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return storeError(c, h.Log, "bookings.delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
