package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeBadRequest          ErrorType = "BAD_REQUEST"
	ErrorTypeNotFound            ErrorType = "NOT_FOUND"
	ErrorTypeMethodNotAllowed    ErrorType = "METHOD_NOT_ALLOWED"
	ErrorTypeInternalServerError ErrorType = "INTERNAL_SERVER_ERROR"
)

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "request_id"

// CustomError carries the HTTP status and the public message of a failed request.
type CustomError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Internal   error
}

func (e *CustomError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Internal
}

func newError(errType ErrorType, message string, statusCode int, internal error) *CustomError {
	return &CustomError{
		Type:       errType,
		Message:    message,
		StatusCode: statusCode,
		Internal:   internal,
	}
}

func New400Error(message string) *CustomError {
	return newError(ErrorTypeBadRequest, message, http.StatusBadRequest, nil)
}

func New404Error(message string) *CustomError {
	return newError(ErrorTypeNotFound, message, http.StatusNotFound, nil)
}

func New405Error() *CustomError {
	return newError(ErrorTypeMethodNotAllowed, "Method not allowed", http.StatusMethodNotAllowed, nil)
}

// New500Error hides the internal error from the client; it is only logged.
func New500Error(internal error) *CustomError {
	return newError(ErrorTypeInternalServerError, "An unexpected error occurred", http.StatusInternalServerError, internal)
}

// HandleError writes err as a JSON error body, logging internal server errors.
func HandleError(c *gin.Context, err error) {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		customErr = New500Error(err)
	}

	if customErr.Type == ErrorTypeInternalServerError {
		log.Error().
			Err(customErr.Internal).
			Str("url", c.Request.URL.String()).
			Str(RequestIDKey, c.GetString(RequestIDKey)).
			Msg("Internal Server Error")
	}

	c.AbortWithStatusJSON(customErr.StatusCode, gin.H{
		"error": gin.H{
			"type":    customErr.Type,
			"message": customErr.Message,
		},
	})
}

// NotFoundHandler is installed as the engine's NoRoute handler.
func NotFoundHandler(c *gin.Context) {
	HandleError(c, New404Error(fmt.Sprintf("No route for %s %s", c.Request.Method, c.Request.URL.Path)))
}

// MethodNotAllowedHandler is installed as the engine's NoMethod handler.
func MethodNotAllowedHandler(c *gin.Context) {
	HandleError(c, New405Error())
}
