package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileStore keeps uploaded files and hands back the public URL they are
// served under.
type FileStore interface {
	Save(dir, name string, data []byte) (string, error)
	Remove(url string) error
}

// LocalStore writes below Root and serves files under URLPrefix.
type LocalStore struct {
	Root      string
	URLPrefix string
}

func NewLocalStore(root, urlPrefix string) *LocalStore {
	return &LocalStore{Root: root, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (s *LocalStore) Save(dir, name string, data []byte) (string, error) {
	if strings.ContainsAny(name, `/\`) || strings.Contains(dir, "..") {
		return "", fmt.Errorf("invalid upload path %s/%s", dir, name)
	}
	target := filepath.Join(s.Root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(target, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path.Join(s.URLPrefix, dir, name), nil
}

// Remove deletes the file behind url. URLs outside URLPrefix (seeded remote
// images, for instance) are ignored.
func (s *LocalStore) Remove(url string) error {
	prefix := s.URLPrefix + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	rel := strings.TrimPrefix(url, prefix)
	if strings.Contains(rel, "..") {
		return fmt.Errorf("invalid upload url %s", url)
	}
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
