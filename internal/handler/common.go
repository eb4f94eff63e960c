// Package handler exposes the HTTP handlers for the booking API.
// Each handler validates the request shape, performs exactly one
// store call and maps the result onto a stable response envelope.
// Store acknowledgments never leak to clients: mutations answer with
// `{"success": true}` (plus `"id"` on creation) and failures with
// `{"error": "<message>"}`.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// storeTimeout bounds every store call so a stalled database turns
// into a 503 instead of a hung request.
const storeTimeout = 5 * time.Second

// storeError maps an unexpected store failure to a response.  The
// concrete error is logged with the failing operation; the client
// only ever sees a generic message.  A deadline hit is reported as
// 503 to distinguish an overloaded store from a broken one.
func storeError(c echo.Context, log zerolog.Logger, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Err(err).Str("op", op).Msg("store call timed out")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store temporarily unavailable"})
	}
	log.Error().Err(err).Str("op", op).Msg("store call failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
