package transactions

import "sync"

// TokenStore holds the single aggregator credential for this process. It is
// set once by the token exchange and read by every fetch. No rotation,
// expiry or multi-tenant scoping.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// Set stores the access token.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Get returns the stored token; ok is false when none has been stored yet.
func (s *TokenStore) Get() (token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}
