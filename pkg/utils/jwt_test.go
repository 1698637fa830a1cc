package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	id := uuid.New()

	token, err := m.CreateToken(id, "user@example.com", "USER")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.CreateToken(uuid.New(), "user@example.com", "USER")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).CreateToken(uuid.New(), "a@b.c", "ADMIN")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, ComparePasswords(hash, "password123"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-11-02")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.November, d.Month())

	ts, err := ParseDate("2026-11-02T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())

	_, err = ParseDate("next tuesday")
	assert.Error(t, err)
}
