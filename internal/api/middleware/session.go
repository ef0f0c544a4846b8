package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/portal88/wallapi/internal/service"
)

// SessionCookieName is the cookie carrying the opaque session id
const SessionCookieName = "portal88_session"

// Context keys under which the session middleware stores the caller identity
const (
	ContextKeySessionID = "session_id"
	ContextKeyUsername  = "username"
)

// SessionMiddleware is the request gate: it resolves the caller's session
// cookie, refreshes the presence entry for authenticated callers and
// prunes stale presence entries. Runs on every request.
func SessionMiddleware(sessions *service.SessionService, presence *service.PresenceService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				if username := sessions.Resolve(cookie.Value); username != "" {
					c.Set(ContextKeySessionID, cookie.Value)
					c.Set(ContextKeyUsername, username)
					presence.Touch(cookie.Value)
				}
			}
			presence.Prune(time.Now())
			return next(c)
		}
	}
}
