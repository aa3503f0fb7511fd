package activities

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a response body cannot be decoded
// into the expected JSON shape.
var ErrMalformedResponse = errors.New("malformed response body")

// APIError represents a non-2xx response from the activities API. Detail
// carries the server-provided failure text when the body included one.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Detail)
}

// AsAPIError unwraps err into an *APIError if one is present in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// Detail returns the server-provided failure text for err, or fallback when
// err carries no detail. This is the single place the UI layers turn
// transport errors into user-visible message text.
func Detail(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}

	return fallback
}
