// Package response contains response utility functions and types
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody represents the standard API error response structure
type ErrorBody struct {
	ErrorType string `json:"error_type"`
	Error     string `json:"error"`
}

// SuccessResponse sends a JSON response with "success": true merged with
// any extra fields
func SuccessResponse(c echo.Context, data echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range data {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}

// JSONResponse sends a plain JSON response
func JSONResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse sends an error JSON response
func ErrorResponse(c echo.Context, httpStatus int, errorType, message string) error {
	return c.JSON(httpStatus, ErrorBody{
		ErrorType: errorType,
		Error:     message,
	})
}
