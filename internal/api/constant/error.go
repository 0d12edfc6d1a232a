package constant

import (
	"fmt"
	"net/http"
)

type CustomError struct {
	StatusCode int
	Message    string
}

func NewCError(StatusCode int, Message string) CustomError {
	return CustomError{StatusCode: StatusCode, Message: Message}
}

// NotFound builds a 404 error whose message names the missing resource.
func NotFound(format string, args ...any) CustomError {
	return NewCError(http.StatusNotFound, fmt.Sprintf(format, args...))
}

func (err CustomError) Error() string {
	return err.Message
}

var (
	ErrRouteNotFound = NewCError(http.StatusNotFound,
		"not found")
	ErrInvalidDays = NewCError(http.StatusBadRequest,
		"invalid 'days' query parameter: must be an integer")
	ErrInternal = NewCError(http.StatusInternalServerError,
		"Internal server error")
	ErrTimeout = NewCError(http.StatusGatewayTimeout,
		"request timed out")
)
