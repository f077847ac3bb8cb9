package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error response structure: every failure is surfaced to
// the caller as a single human-readable message.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends an error response with the given status code
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Conflict sends a 409 error response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// UnsupportedMediaType sends a 415 error response
func UnsupportedMediaType(c *gin.Context, message string) {
	Error(c, http.StatusUnsupportedMediaType, message)
}

// PayloadTooLarge sends a 413 error response
func PayloadTooLarge(c *gin.Context, message string) {
	Error(c, http.StatusRequestEntityTooLarge, message)
}

// InternalError sends a 500 error response
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// OK sends a 200 response with the given payload
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}
