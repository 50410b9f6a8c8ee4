package apiclient

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx HTTP response from the admin API. The
// status code and body are surfaced exactly as received; the client
// never retries or rewrites failures.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err (or any wrapped error) is an HTTPError
// with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}
