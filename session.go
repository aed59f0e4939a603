package gpswox

import "sync"

// Session holds the API hash sent as user_api_hash with every request.
//
// The Client owns its Session. Login is the only writer inside the SDK;
// concurrent writers resolve last-writer-wins and in-flight requests keep the
// token they already read.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession returns a session holding token, which may be empty.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the current API hash.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// SetToken replaces the API hash.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}
