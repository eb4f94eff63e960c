package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/config"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/utils"
)

// SessionHandler issues and clears the session cookie.  The signing
// secret and deployment mode come from process-wide configuration,
// loaded once at startup.
type SessionHandler struct {
	Cfg config.Config
	Log zerolog.Logger
}

func NewSessionHandler(cfg config.Config, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{Cfg: cfg, Log: log}
}

type issueTokenReq struct {
	Email string `json:"email"`
}

// IssueToken handles POST /jwt.  It signs a long-lived session token
// for the supplied email and sets it as an HTTP-only cookie.  The
// email is taken on trust; the upstream identity provider has
// already authenticated the user before the client calls this route.
func (h *SessionHandler) IssueToken(c echo.Context) error {
	var req issueTokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, req.Email, h.Cfg.TokenTTLDays)
	if err != nil {
		h.Log.Error().Err(err).Msg("session token signing failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	c.SetCookie(utils.SessionCookie(tok.Token, tok.Exp, h.Cfg.IsProd()))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Logout handles GET /logout by expiring the session cookie.  It is
// idempotent and succeeds whether or not a session existed.
func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(utils.ExpiredSessionCookie(h.Cfg.IsProd()))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
