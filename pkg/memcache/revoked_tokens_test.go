package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokedTokens(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewRevokedTokens()
	s.now = func() time.Time { return now }

	s.Revoke("a", now.Add(time.Hour))
	s.Revoke("b", now.Add(time.Minute))
	s.Revoke("", now.Add(time.Hour))

	assert.True(t, s.IsRevoked("a"))
	assert.True(t, s.IsRevoked("b"))
	assert.False(t, s.IsRevoked("c"))
	assert.False(t, s.IsRevoked(""))

	now = now.Add(2 * time.Minute)
	assert.False(t, s.IsRevoked("b"), "expired entries are forgotten")
	assert.True(t, s.IsRevoked("a"))

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, s.Purge())
	assert.False(t, s.IsRevoked("a"))
}
