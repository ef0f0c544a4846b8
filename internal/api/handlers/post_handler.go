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

// PostHandler is the handler for the post API
type PostHandler struct {
	service *service.PostService
}

// NewPostHandler creates a new handler for the post API
func NewPostHandler(service *service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Content string `json:"content"`
}

// ListPosts returns all posts, newest first. Public.
func (h *PostHandler) ListPosts(c echo.Context) error {
	return response.JSONResponse(c, h.service.ListPosts())
}

// CreatePost creates a post for the authenticated caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	username := currentUsername(c)
	if username == "" {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", service.ErrNotLoggedIn.Error())
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "invalid request body")
	}

	post, err := h.service.CreatePost(username, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyContent):
			return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
		default:
			return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
		}
	}

	return response.SuccessResponse(c, echo.Map{"post": post})
}

// DeletePost removes a post owned by the authenticated caller
func (h *PostHandler) DeletePost(c echo.Context) error {
	username := currentUsername(c)
	if username == "" {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", service.ErrNotLoggedIn.Error())
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", repository.ErrPostNotFound.Error())
	}

	if err := h.service.DeletePost(username, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", err.Error())
		case errors.Is(err, repository.ErrNotPostOwner):
			return response.ErrorResponse(c, http.StatusForbidden, "AuthorizationException", err.Error())
		default:
			return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
		}
	}

	return response.SuccessResponse(c, nil)
}
