package observability

import "time"

// MetricsRecorder is an interface for recording client metrics.
// Implementations can use any metrics library (Prometheus, StatsD, etc.).
type MetricsRecorder interface {
	// RecordHTTPRequest records a finished HTTP call. The path is normalized,
	// so device ids and media file names do not explode label cardinality.
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)

	// RecordError records an error occurrence by operation and error kind.
	RecordError(operation, errorType string)
}

type noopMetricsRecorder struct{}

// NoopMetricsRecorder returns a metrics recorder that does nothing.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NoopMetricsRecorder() MetricsRecorder {
	return &noopMetricsRecorder{}
}

func (m *noopMetricsRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
func (m *noopMetricsRecorder) RecordError(string, string)                           {}
