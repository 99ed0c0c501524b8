package response

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the status code it should be sent with.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string { return e.Message }

func statusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) && he.Status != 0 {
		return he.Status
	}
	return http.StatusBadRequest
}
