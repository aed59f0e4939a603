// Package middleware provides the RoundTripper middleware of the GPSWox client.
package middleware

import (
	"maps"
	"net/http"
	"net/url"
)

// TokenParam is the query parameter carrying the session token.
const TokenParam = "user_api_hash"

// TokenSource returns the token to attach to the next request.
type TokenSource func() string

// Token returns a middleware that sets the user_api_hash query parameter on
// every request. The parameter is set, not appended, so it appears exactly
// once even if the caller already supplied one. An empty token is still sent.
func Token(source TokenSource) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &tokenTransport{
			next:   next,
			source: source,
		}
	}
}

type tokenTransport struct {
	next   http.RoundTripper
	source TokenSource
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = cloneRequest(req)

	query := req.URL.Query()
	query.Set(TokenParam, t.source())
	req.URL.RawQuery = query.Encode()

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

// Headers returns a middleware that sets fixed headers on every request.
func Headers(headers http.Header) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			req = cloneRequest(req)
			for name, values := range headers {
				req.Header[name] = values
			}

			//nolint:wrapcheck // Middleware passes through errors from next handler in chain
			return next.RoundTrip(req)
		})
	}
}

// cloneRequest creates a shallow copy of the request with its own header map
// and URL, so middleware never mutates the caller's request.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)

	u := new(url.URL)
	*u = *req.URL
	r.URL = u

	return r
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
