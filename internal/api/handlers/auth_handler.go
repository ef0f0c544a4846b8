package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/portal88/wallapi/internal/api/middleware"
	"github.com/portal88/wallapi/internal/repository"
	"github.com/portal88/wallapi/internal/service"
	"github.com/portal88/wallapi/pkg/utils/response"
)

// AuthHandler is the handler for the auth API
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler for the auth API
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "invalid request body")
	}

	if err := h.service.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
		case errors.Is(err, repository.ErrUsernameTaken):
			return response.ErrorResponse(c, http.StatusBadRequest, "ConflictException", err.Error())
		default:
			return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
		}
	}

	return response.SuccessResponse(c, nil)
}

// Login verifies credentials and sets the session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "invalid request body")
	}

	sessionID, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", err.Error())
		default:
			return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(service.SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.SuccessResponse(c, echo.Map{"username": req.Username})
}

// Logout destroys the caller's session and clears the cookie. Succeeds
// for anonymous callers too.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sessionID := currentSessionID(c); sessionID != "" {
		h.service.Logout(sessionID)
	}

	// Clear the session cookie
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-1 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.SuccessResponse(c, nil)
}

// Me reports the username associated with the caller's session, or null
// for anonymous callers
func (h *AuthHandler) Me(c echo.Context) error {
	if username := currentUsername(c); username != "" {
		return response.JSONResponse(c, echo.Map{"username": username})
	}
	return response.JSONResponse(c, echo.Map{"username": nil})
}
