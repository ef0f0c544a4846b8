package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/portal88/wallapi/internal/repository"
	"github.com/portal88/wallapi/internal/service"
	"github.com/portal88/wallapi/pkg/utils/response"
)

// ReportHandler is the handler for the report API
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new handler for the report API
func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type reportRequest struct {
	Reason string `json:"reason"`
}

// ReportPost records a moderation report against a post. The reason is
// optional and defaults to an empty string.
func (h *ReportHandler) ReportPost(c echo.Context) error {
	username := currentUsername(c)
	if username == "" {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", service.ErrNotLoggedIn.Error())
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", repository.ErrPostNotFound.Error())
	}

	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "invalid request body")
	}

	if err := h.service.ReportPost(username, id, req.Reason); err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", err.Error())
		default:
			return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
		}
	}

	return response.SuccessResponse(c, nil)
}
