package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the single cookie the API sets. Its value is an
// HMAC-signed token carrying {user id, session id, issued-at}; there is no
// server-side session table, so validity is bounded only by the cookie's
// max-age and the signature check.
const SessionCookieName = "careero_session"

var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is the payload of the session cookie.
type SessionClaims struct {
	UserID    string `json:"uid"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSessionToken issues a signed session token for the user. The session id
// is random and serves uniqueness only; nothing references it later.
func NewSessionToken(userID, secret string) (string, error) {
	claims := SessionClaims{
		UserID:    userID,
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates the signature and returns the claims.
// Any failure (garbage value, wrong algorithm, tampered payload) yields
// ErrInvalidSession; callers treat that as "not authenticated".
func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.UserID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// SetSessionCookie attaches the session cookie to the response: HttpOnly,
// SameSite=Lax, Secure in production, max-age in days.
func SetSessionCookie(c *gin.Context, token string, ttlDays int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, ttlDays*24*60*60, "/", "", secure, true)
}

// ClearSessionCookie instructs the client to delete the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
