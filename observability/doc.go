// Package observability provides interfaces for logging and metrics collection
// in the go-gpswox client.
//
// # Logger Interface
//
// The Logger interface supports structured logging with key-value pairs:
//
//	client, err := gpswox.NewWithConfig(&gpswox.ClientConfig{
//		BaseURL: "https://gps.example.com/",
//		Logger:  observability.NewSlogLogger(slog.Default()),
//	})
//
// Request URLs are logged with the user_api_hash and password query
// parameters redacted.
//
// # MetricsRecorder Interface
//
// The MetricsRecorder interface tracks HTTP calls and errors:
//
//	client, err := gpswox.NewWithConfig(&gpswox.ClientConfig{
//		BaseURL: "https://gps.example.com/",
//		Metrics: myRecorder,
//	})
//
// Paths passed to RecordHTTPRequest are normalized (numeric ids and media file
// names replaced by placeholders) to keep label cardinality bounded.
//
// # Default Behavior
//
// If no logger or metrics recorder is provided, the client uses no-op
// implementations that discard all events.
package observability
