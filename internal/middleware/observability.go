package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexfrei/go-gpswox/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
// Every request gets a request_id field so its start and end lines can be joined.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger := t.logger.With(observability.Field{Key: observability.KeyRequestID, Value: uuid.NewString()})
	urlStr := RedactURL(req.URL)
	path := normalizePath(req.URL.Path)

	logger.Debug("http request started",
		observability.Field{Key: observability.KeyMethod, Value: req.Method},
		observability.Field{Key: observability.KeyURL, Value: urlStr},
		observability.Field{Key: observability.KeyPath, Value: req.URL.Path},
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Error("http request failed",
			observability.Field{Key: observability.KeyMethod, Value: req.Method},
			observability.Field{Key: observability.KeyURL, Value: urlStr},
			observability.Field{Key: observability.KeyDuration, Value: duration},
			observability.Field{Key: observability.KeyError, Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "TransportError")

		//nolint:wrapcheck // Observability middleware logs error but passes it through unchanged
		return nil, err
	}

	fields := []observability.Field{
		{Key: observability.KeyMethod, Value: req.Method},
		{Key: observability.KeyURL, Value: urlStr},
		{Key: observability.KeyStatus, Value: resp.StatusCode},
		{Key: observability.KeyDuration, Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("http request completed with error", fields...)
	} else {
		logger.Debug("http request completed", fields...)
	}

	t.metrics.RecordHTTPRequest(req.Method, path, resp.StatusCode, duration)

	return resp, nil
}

// normalizedPathCache holds normalized forms of static paths only. Paths
// carrying ids or media file names are normalized on every call, so the cache
// is bounded by the number of endpoints rather than by fleet size.
var normalizedPathCache sync.Map

// normalizePath replaces dynamic path segments with placeholders to keep
// metric label cardinality bounded:
//   - all-digit segments become :id
//   - the segment after media/file becomes :file
//
// Examples:
//   - /api/devices/42/media/file/cam_1.jpg -> /api/devices/:id/media/file/:file
//   - /api/call_actions/update/7 -> /api/call_actions/update/:id
//   - /api/get_devices -> /api/get_devices
func normalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // Cache only stores strings, type assertion is safe
		return cached.(string)
	}

	dynamic := false
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		switch {
		case i >= 2 && segments[i-2] == "media" && segments[i-1] == "file" && segment != "":
			segments[i] = ":file"
			dynamic = true
		case isNumeric(segment):
			segments[i] = ":id"
			dynamic = true
		}
	}

	if !dynamic {
		normalizedPathCache.Store(path, path)
		return path
	}

	return strings.Join(segments, "/")
}

func isNumeric(segment string) bool {
	if segment == "" {
		return false
	}

	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
