package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-workspace/pkg/config"
)

// SessionIDKey is the echo context key holding the workspace session id
const SessionIDKey = "session_id"

// EchoSession returns an Echo middleware that assigns every browser a
// workspace session. The id lives in a cookie; a missing or malformed cookie
// starts a new session.
func EchoSession(cfg *config.SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(cfg.CookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.NewString()
			}

			// refresh on every request so the cookie outlives the store TTL
			c.SetCookie(&http.Cookie{
				Name:     cfg.CookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(cfg.TTL),
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			c.Set(SessionIDKey, id)
			return next(c)
		}
	}
}

// GetSessionID returns the session id set by EchoSession
func GetSessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(SessionIDKey).(string)
	return id, ok && id != ""
}
