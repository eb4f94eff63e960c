package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/utils" // session token verification
)

// EmailContextKey is the echo context key under which the guard
// stores the authenticated email.
const EmailContextKey = "user_email"

// SessionAuth returns an Echo middleware that validates the session
// cookie and injects the token's email claim into the request
// context.  Every failure path (missing cookie, bad signature,
// expired token) responds 401 and returns before the wrapped handler
// runs; the handler can only ever observe a verified email via
// `c.Get(EmailContextKey)`.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(utils.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized access"})
			}
			email, err := utils.VerifySessionToken(secret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized access"})
			}
			c.Set(EmailContextKey, email)
			return next(c)
		}
	}
}
