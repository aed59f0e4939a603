package gpswox

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-gpswox/internal/form"
	"github.com/lexfrei/go-gpswox/internal/middleware"
	"github.com/lexfrei/go-gpswox/internal/response"
)

// Params is a free-form parameter bag. Values may be scalars, slices, maps,
// or (in multipart bodies) io.Reader file contents.
type Params map[string]any

// With returns a copy of p with key set to value. p itself is not modified.
func (p Params) With(key string, value any) Params {
	out := make(Params, len(p)+1)
	maps.Copy(out, p)
	out[key] = value

	return out
}

// Merge returns a copy of p overlaid with other; keys in other win.
func (p Params) Merge(other Params) Params {
	out := make(Params, len(p)+len(other))
	maps.Copy(out, p)
	maps.Copy(out, other)

	return out
}

// Request describes one API call.
//
// Path is relative to the client's base URL ("api/get_devices"). Query is
// encoded into the URL; at most one body is sent, Multipart taking
// precedence over JSON. The session token is always added to the query.
type Request struct {
	Method    string
	Path      string
	Query     Params
	// JSON is marshaled as the request body. Service methods called with nil
	// params send an empty object ({}), not an empty array; GPSWox accepts
	// either.
	JSON      any
	Multipart Params
}

// Do performs req and decodes the response body.
//
// A successful response whose body is empty or not valid JSON yields nil and
// no error. Failures are reported as *AuthenticationError, *APIError or
// *TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (any, error) {
	body, err := c.DoRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	return response.Decode(body), nil
}

// DoRaw performs req like Do and returns the undecoded response body.
func (c *Client) DoRaw(ctx context.Context, req *Request) ([]byte, error) {
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{
			Method: httpReq.Method,
			URL:    middleware.RedactURL(httpReq.URL),
			Err:    errors.Wrap(unwrapURLError(err), "request failed"),
		}
	}

	body, err := response.Read(resp)
	if err != nil {
		return nil, &TransportError{
			Method: httpReq.Method,
			URL:    middleware.RedactURL(httpReq.URL),
			Err:    err,
		}
	}

	if err := classify(httpReq, resp, body); err != nil {
		return nil, err
	}

	return body, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	if req == nil {
		return nil, errors.New("request is required")
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.Multipart != nil:
		buf, ct, err := form.Multipart(req.Multipart)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode multipart body for %s", req.Path)
		}
		body, contentType = buf, ct
	case req.JSON != nil:
		encoded, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode JSON body for %s", req.Path)
		}
		body, contentType = bytes.NewReader(encoded), "application/json"
	}

	httpReq, err := c.http.NewRequest(ctx, method, req.Path, form.Query(req.Query), body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	return httpReq, nil
}

// classify maps error statuses onto the error taxonomy. Any other status,
// redirects included, counts as success.
func classify(req *http.Request, resp *http.Response, body []byte) error {
	status := resp.StatusCode

	switch {
	case status == http.StatusBadRequest:
		return &APIError{Message: "Error", StatusCode: status}
	case status == http.StatusUnauthorized:
		return &AuthenticationError{Message: response.Message(body), StatusCode: status}
	case status > http.StatusBadRequest && status < http.StatusInternalServerError:
		return &APIError{
			Message:    response.ClientErrorMessage(req.Method, middleware.RedactURL(sentURL(req, resp)), resp, body),
			StatusCode: status,
		}
	case status >= http.StatusInternalServerError && status < 600:
		return &APIError{Message: "Internal Server Error", StatusCode: http.StatusInternalServerError}
	}

	return nil
}

// sentURL prefers the URL that went over the wire, which carries the token
// added by the middleware chain.
func sentURL(req *http.Request, resp *http.Response) *url.URL {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL
	}

	return req.URL
}

// unwrapURLError drops the *url.Error wrapper, whose message embeds the
// unredacted request URL.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}
