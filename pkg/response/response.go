package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error builds an error body
func Error(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Abort writes an error body and stops the handler chain
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Error(message))
}

// BadRequest builds a 400 body
func BadRequest(message string) ErrorResponse {
	return Error(message)
}

// Unauthorized builds a 401 body
func Unauthorized(message string) ErrorResponse {
	return Error(message)
}

// NotFound builds a 404 body
func NotFound(message string) ErrorResponse {
	return Error(message)
}

// Conflict builds a 409 body
func Conflict(message string) ErrorResponse {
	return Error(message)
}

// InternalError builds a 500 body
func InternalError(message string) ErrorResponse {
	return Error(message)
}
