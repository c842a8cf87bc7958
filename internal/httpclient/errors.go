package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for well-known API status codes. The root package
// re-exports these so callers can match with errors.Is.
var (
	ErrBadRequest         = errors.New("opensubtitles: bad request")
	ErrUnauthorized       = errors.New("opensubtitles: unauthorized (invalid API key or token)")
	ErrForbidden          = errors.New("opensubtitles: forbidden (insufficient permissions or quota exceeded)")
	ErrNotFound           = errors.New("opensubtitles: resource not found")
	ErrRateLimited        = errors.New("opensubtitles: rate limit exceeded")
	ErrServiceUnavailable = errors.New("opensubtitles: service unavailable or internal server error")
)

// APIError is returned for any non-2xx API response. It carries the HTTP
// status code and, when the server sent a JSON error document, its message.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api request failed: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api request failed: status %d, body: %s", e.StatusCode, e.Body)
}

// Unwrap maps the status code onto a sentinel error.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrServiceUnavailable
	}
	return nil
}
