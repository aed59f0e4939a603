// Package httpclient provides the HTTP transport of the GPSWox client: an
// http.Client bound to a base URL with a fixed timeout and a middleware chain.
package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultTimeout is applied to every call unless WithTimeout overrides it.
const DefaultTimeout = 10 * time.Second

// Client is an HTTP client that resolves relative paths against a base URL
// and supports middleware chaining.
type Client struct {
	base       *http.Client
	baseURL    *url.URL
	middleware []Middleware
}

// Middleware wraps an http.RoundTripper to add behavior.
// Middleware is applied in order: first middleware is outermost.
type Middleware func(http.RoundTripper) http.RoundTripper

// New creates a client rooted at baseURL.
//
// Relative references are resolved the RFC 3986 way, so the trailing slash of
// the base matters: "https://host/gps/" + "api/login" gives
// "https://host/gps/api/login", while "https://host/gps" + "api/login" gives
// "https://host/api/login".
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", baseURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Newf("base URL %q must be absolute", baseURL)
	}

	c := &Client{
		base: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:    parsed,
		middleware: []Middleware{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.middleware) > 0 {
		transport := c.base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// Apply middleware in reverse order so first middleware is outermost
		for i := len(c.middleware) - 1; i >= 0; i-- {
			transport = c.middleware[i](transport)
		}

		c.base.Transport = transport
	}

	return c, nil
}

// BaseURL returns a copy of the base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Resolve resolves a relative reference such as "api/get_devices" against the
// base URL and replaces its query with query.
func (c *Client) Resolve(ref string, query url.Values) (*url.URL, error) {
	rel, err := url.Parse(ref)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request path %q", ref)
	}

	u := c.baseURL.ResolveReference(rel)
	u.RawQuery = query.Encode()

	return u, nil
}

// NewRequest builds a request for ref with the given query and body.
func (c *Client) NewRequest(ctx context.Context, method, ref string, query url.Values, body io.Reader) (*http.Request, error) {
	u, err := c.Resolve(ref, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s request for %s", method, ref)
	}

	return req, nil
}

// Do executes an HTTP request using the configured middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	//nolint:wrapcheck // Callers classify transport errors themselves
	return c.base.Do(req)
}

// HTTPClient returns the underlying http.Client.
func (c *Client) HTTPClient() *http.Client {
	return c.base
}
