package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStore(root, "/uploads/")

	url, err := s.Save("tours", "a.jpg", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/tours/a.jpg", url)

	b, err := os.ReadFile(filepath.Join(root, "tours", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))

	require.NoError(t, s.Remove(url))
	_, err = os.Stat(filepath.Join(root, "tours", "a.jpg"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Remove(url), "removing twice is fine")
	assert.NoError(t, s.Remove("https://cdn.example.com/x.jpg"))
	assert.Error(t, s.Remove("/uploads/../etc/passwd"))

	_, err = s.Save("tours", "../x.jpg", nil)
	assert.Error(t, err)
}
