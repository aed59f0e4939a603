// Package observability provides interfaces for logging and metrics collection.
// These interfaces allow users to plug in their own logging and metrics implementations.
package observability

// Keys of the fields the GPSWox client attaches to its log lines.
const (
	KeyRequestID = "request_id"
	KeyMethod    = "method"
	KeyURL       = "url" // user_api_hash and password redacted
	KeyPath      = "path"
	KeyStatus    = "status"
	KeyDuration  = "duration"
	KeyError     = "error"
)

// Field is one structured key-value pair on a log line.
type Field struct {
	Key   string
	Value any
}

// Logger receives the client's log lines.
//
// Per request the client logs "http request started" and "http request
// completed" at Debug, a completion with a 4xx or 5xx status at Warn, and a
// transport failure at Error. Login logs its outcome at Info or Warn. All
// request lines share a request_id field.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a logger that adds fields to every line.
	With(fields ...Field) Logger
}

// NoopLogger returns a logger that discards everything.
// The GPSWox client uses it when ClientConfig.Logger is nil.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NoopLogger() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...Field) {}
func (noopLogger) Info(string, ...Field)  {}
func (noopLogger) Warn(string, ...Field)  {}
func (noopLogger) Error(string, ...Field) {}

//nolint:ireturn // Method must return interface to satisfy Logger interface
func (l noopLogger) With(...Field) Logger { return l }
