package memcache

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out tokens until they would have expired
// anyway. Entries are keyed by the token's jti.
type RevokedTokenStore interface {
	Revoke(tokenID string, expiresAt time.Time)
	IsRevoked(tokenID string) bool
	// Purge drops entries whose expiry has passed and returns how many it removed.
	Purge() int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = expiresAt
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	expiresAt, ok := s.data[tokenID]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.now().After(expiresAt) {
		s.mu.Lock()
		delete(s.data, tokenID)
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *RevokedTokens) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, exp := range s.data {
		if now.After(exp) {
			delete(s.data, id)
			n++
		}
	}
	return n
}
