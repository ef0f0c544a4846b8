package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/portal88/wallapi/internal/service"
	"github.com/portal88/wallapi/pkg/utils/response"
)

// PresenceHandler is the handler for the online-count API
type PresenceHandler struct {
	presence *service.PresenceService
}

// NewPresenceHandler creates a new handler for the online-count API
func NewPresenceHandler(presence *service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// Online reports the approximate number of active sessions. The session
// middleware has already pruned stale entries for this request.
func (h *PresenceHandler) Online(c echo.Context) error {
	return response.JSONResponse(c, echo.Map{"online": h.presence.Count()})
}
