package gpswox

import "context"

// Requester performs API requests. *Client implements it; resource services
// depend only on this interface, so tests can substitute a mock.
type Requester interface {
	Do(ctx context.Context, req *Request) (any, error)
	DoRaw(ctx context.Context, req *Request) ([]byte, error)
}

// Compile-time interface check.
var _ Requester = (*Client)(nil)
