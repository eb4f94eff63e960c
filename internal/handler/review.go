package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/model"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/repository"
)

// ReviewHandler serves the review routes.  Reviews are append-only:
// there is no update or delete surface.
type ReviewHandler struct {
	Reviews repository.ReviewStore
	Log     zerolog.Logger
}

func NewReviewHandler(reviews repository.ReviewStore, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, Log: log}
}

// ListReviews handles GET /reviews with no filtering.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	reviews, err := h.Reviews.ListAll(ctx)
	if err != nil {
		return storeError(c, h.Log, "reviews.list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": reviews})
}

// ListRoomReviews handles GET /reviews/:roomId.  Matching is exact
// string equality on the stored roomId; an unknown room simply
// yields an empty list.
func (h *ReviewHandler) ListRoomReviews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	reviews, err := h.Reviews.ListByRoom(ctx, c.Param("roomId"))
	if err != nil {
		return storeError(c, h.Log, "reviews.listByRoom", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": reviews})
}

type createReviewReq struct {
	BookingID string  `json:"bookingId"`
	RoomID    string  `json:"roomId"`
	UserEmail string  `json:"userEmail"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

// CreateReview handles POST /reviews.  bookingId, a non-zero rating
// and a comment are required; roomId is optional but drives the
// per-room listing when present.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.BookingID = strings.TrimSpace(req.BookingID)
	req.Comment = strings.TrimSpace(req.Comment)
	if req.BookingID == "" || req.Rating == 0 || req.Comment == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookingId, rating and comment are required"})
	}

	review := model.Review{
		BookingID: req.BookingID,
		RoomID:    strings.TrimSpace(req.RoomID),
		UserEmail: strings.TrimSpace(req.UserEmail),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	id, err := h.Reviews.Create(ctx, &review)
	if err != nil {
		return storeError(c, h.Log, "reviews.create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": id})
}
