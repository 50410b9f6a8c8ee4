// Package credential persists the dashboard's bearer token between
// runs. The token is a single opaque string; its presence is the only
// signal that the operator may still be authenticated.
package credential

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned when no credential is stored.
var ErrNotFound = errors.New("credential: not found")

// Store is a single named slot holding the bearer token.
type Store interface {
	// Get returns the stored token, or ErrNotFound when the slot is empty.
	Get() (string, error)
	// Set writes the token, replacing any previous value.
	Set(token string) error
	// Remove erases the slot. Removing an empty slot is not an error.
	Remove() error
}

// FileStore keeps the token in a file under the user's home directory,
// so it survives process restarts.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore rooted at ~/.gym-admin/token.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	return &FileStore{path: filepath.Join(home, ".gym-admin", "token")}, nil
}

// NewFileStoreAt returns a FileStore using the given path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token + "\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileStore) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func (s *MemStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNotFound
	}
	return s.token, nil
}

func (s *MemStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemStore) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
