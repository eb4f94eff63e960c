package utils // package utils provides helpers for session token creation and verification

import (
	"errors"   // sentinel error for failed verification
	"net/http" // cookie construction
	"time"     // expiration handling

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// ErrInvalidSession is returned by VerifySessionToken for any failed
// validation: bad signature, wrong algorithm, expired or malformed
// token, or a missing email claim.  Callers respond 401 and never
// forward the underlying cause.
var ErrInvalidSession = errors.New("invalid session token")

// SessionToken represents a signed HS256 JWT identifying a user by
// email, along with its expiry.  Sessions are long-lived (hundreds of
// days) and entirely client-held; nothing is persisted server-side.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT embedding the user's
// email.  ttlDays controls the validity window.  The claims are the
// email, expiration (exp) and issued at (iat).
func NewSessionToken(secret, email string, ttlDays int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"email": email,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// VerifySessionToken validates the signature and expiry of raw and
// returns the embedded email.  The signing method is pinned to HMAC
// so a token signed with another algorithm is rejected.
func VerifySessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidSession
	}
	return email, nil
}

// SessionCookie builds the HTTP-only cookie carrying the token.  In
// production the cookie is Secure with SameSite=None so the hosted
// booking client can send it cross-site; otherwise SameSite=Strict.
func SessionCookie(token string, exp time.Time, prod bool) *http.Cookie {
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   prod,
		SameSite: http.SameSiteStrictMode,
	}
	if prod {
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// ExpiredSessionCookie returns a cookie that clears the session.
// Setting it is idempotent and always succeeds.
func ExpiredSessionCookie(prod bool) *http.Cookie {
	c := SessionCookie("", time.Unix(0, 0), prod)
	c.MaxAge = -1
	return c
}
