package handler

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Welcome answers the root path with a liveness line for anyone
// poking the API by hand.
func Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Hotel booking server is running")
}
