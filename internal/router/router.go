// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/config"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/handler"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/middleware"
)

// RegisterRoutes wires every route of the booking API onto the
// provided Echo instance.  The only guarded route is the per-user
// booking listing: the session middleware must verify the cookie
// before the handler runs, so a failed verification short-circuits
// with 401 and the handler never executes.
func RegisterRoutes(e *echo.Echo, cfg config.Config, s *handler.SessionHandler, rooms *handler.RoomHandler, bookings *handler.BookingHandler, reviews *handler.ReviewHandler) {
	// Liveness
	e.GET("/", handler.Welcome)
	e.GET("/healthz", handler.Health)

	// Session cookie lifecycle
	e.POST("/jwt", s.IssueToken)
	e.GET("/logout", s.Logout)

	// Rooms
	e.GET("/rooms", rooms.ListRooms)
	e.GET("/roomDetails/:id", rooms.GetRoom)
	e.PATCH("/rooms/:id/availability", rooms.UpdateAvailability)

	// Bookings; only the listing needs an authenticated session
	e.GET("/bookings", bookings.ListBookings, middleware.SessionAuth(cfg.JWTSecret))
	e.POST("/bookings", bookings.CreateBooking)
	e.PUT("/bookings/:id", bookings.UpdateBooking)
	e.DELETE("/bookings/:id", bookings.DeleteBooking)

	// Reviews
	e.GET("/reviews", reviews.ListReviews)
	e.GET("/reviews/:roomId", reviews.ListRoomReviews)
	e.POST("/reviews", reviews.CreateReview)
}
