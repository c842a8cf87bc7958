package opensubtitles

import "github.com/dusking/opensubtitles-go/internal/httpclient"

// APIError is returned for any non-2xx API response.
type APIError = httpclient.APIError

// Sentinel errors matched by errors.Is against errors returned from API
// methods. Every *APIError unwraps to the sentinel for its status code.
var (
	ErrBadRequest         = httpclient.ErrBadRequest
	ErrUnauthorized       = httpclient.ErrUnauthorized
	ErrForbidden          = httpclient.ErrForbidden
	ErrNotFound           = httpclient.ErrNotFound
	ErrRateLimited        = httpclient.ErrRateLimited
	ErrServiceUnavailable = httpclient.ErrServiceUnavailable
)
