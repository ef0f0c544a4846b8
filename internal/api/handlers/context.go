// Package handlers contains the handlers for the API
package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/portal88/wallapi/internal/api/middleware"
)

// currentUsername returns the authenticated caller's username, or the
// empty string for anonymous requests
func currentUsername(c echo.Context) string {
	if username, ok := c.Get(middleware.ContextKeyUsername).(string); ok {
		return username
	}
	return ""
}

// currentSessionID returns the caller's resolved session id, or the empty
// string for anonymous requests
func currentSessionID(c echo.Context) string {
	if sessionID, ok := c.Get(middleware.ContextKeySessionID).(string); ok {
		return sessionID
	}
	return ""
}
