package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the credential in a fixed file under the user config
// directory, surviving restarts until logout or a failed re-verification.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the default location,
// $XDG_CONFIG_HOME/odelu/api_key (or the platform equivalent).
func NewFileStore() (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, "odelu", "api_key")}, nil
}

// NewFileStoreAt creates a store at an explicit path (for testing).
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(key string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(key+"\n"), 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory credential store for tests.
type MemoryStore struct {
	key string
}

func (s *MemoryStore) Load() (string, error) { return s.key, nil }
func (s *MemoryStore) Save(key string) error { s.key = key; return nil }
func (s *MemoryStore) Clear() error          { s.key = ""; return nil }
