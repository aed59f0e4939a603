// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewMockServer creates a test HTTP server with a predefined response.
// It validates the request path and, when apiHash is not empty, the
// user_api_hash query parameter, then writes the response.
func NewMockServer(t *testing.T, expectedPath, apiHash, responseBody string, statusCode int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path, "Request path should match expected")

		if apiHash != "" {
			assert.Equal(t, apiHash, r.URL.Query().Get("user_api_hash"), "user_api_hash should be set")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		require.NoError(t, err, "Failed to write response body")
	}))
}

// NewMockServerMulti creates a test HTTP server with multiple path handlers.
// The handlers map keys are URL paths, values are handler functions.
func NewMockServerMulti(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("Unexpected request path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
}

// RecordedRequest is a snapshot of a request received by a RecordingServer.
type RecordedRequest struct {
	Method      string
	Path        string
	EscapedPath string
	RawQuery    string
	ContentType string
	Body        []byte
}

// RecordingServer answers every request with a fixed JSON body and keeps a
// copy of what it received.
type RecordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewRecordingServer starts a RecordingServer replying with statusCode and responseBody.
func NewRecordingServer(t *testing.T, responseBody string, statusCode int) *RecordingServer {
	t.Helper()

	rs := &RecordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err, "Failed to read request body")

		rs.mu.Lock()
		rs.requests = append(rs.requests, RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			EscapedPath: r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		rs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err = w.Write([]byte(responseBody))
		assert.NoError(t, err, "Failed to write response body")
	}))
	t.Cleanup(rs.Close)

	return rs
}

// Requests returns the requests received so far.
func (rs *RecordingServer) Requests() []RecordedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return append([]RecordedRequest(nil), rs.requests...)
}

// Last returns the most recent request and fails the test if there is none.
func (rs *RecordingServer) Last(t *testing.T) RecordedRequest {
	t.Helper()

	requests := rs.Requests()
	require.NotEmpty(t, requests, "no request recorded")

	return requests[len(requests)-1]
}
