package gpswox

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// AuthenticationError reports a rejected session token (HTTP 401) or a login
// whose response carried no user_api_hash (StatusCode 0).
// The remedy is to log in again.
type AuthenticationError struct {
	Message    string
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode == 0 {
		return "gpswox: authentication error: " + e.Message
	}

	return fmt.Sprintf("gpswox: authentication error (status %d): %s", e.StatusCode, e.Message)
}

// APIError reports any other 4xx or 5xx response.
//
// A 400 always carries Message "Error" and every 5xx is reported as
// "Internal Server Error" with StatusCode 500, whatever the server sent.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gpswox: api error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError reports a request that produced no HTTP response: DNS or
// connection failures, timeouts, context cancellation, unreadable bodies.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gpswox: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAuthenticationError reports whether err is or wraps an *AuthenticationError.
func IsAuthenticationError(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	var target *APIError
	return errors.As(err, &target)
}

// IsTransportError reports whether err is or wraps a *TransportError.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}
