package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/config"
)

// RateLimit returns a fixed-window request limiter keyed by client
// IP.  The counter lives in Redis so multiple instances share one
// budget.  When the limiter is disabled, Redis is unavailable, or a
// Redis call fails mid-request, requests pass through untouched with
// a warning logged; rate limiting never takes the API down with it.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client, log zerolog.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			window := time.Now().Unix() / int64(cfg.Window.Seconds())
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), window)

			ctx := c.Request().Context()
			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limit counter unavailable, passing request through")
				return next(c)
			}
			if count == 1 {
				// A lost expiry would pin the counter past its
				// window, so it is worth a warning even though
				// the request itself proceeds normally.
				if err := rdb.Expire(ctx, key, cfg.Window).Err(); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("rate limit expiry not set")
				}
			}
			if count > int64(cfg.Limit) {
				retry := cfg.Window.Seconds()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry)))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many requests"})
			}
			return next(c)
		}
	}
}
