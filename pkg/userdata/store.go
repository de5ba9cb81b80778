package userdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FileStore keeps a single user data document as a JSON file.
// Writes are atomic, readers never see a partially written file.
type FileStore struct {
	path string
}

// NewFileStore makes a store for the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns location of the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Save serializes v and atomically replaces the file
func (s *FileStore) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal user data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("make user data dir: %w", err)
	}
	if err := renameio.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write user data %s: %w", s.path, err)
	}
	return nil
}

// Load reads the file into v. Missing file error wraps os.ErrNotExist.
func (s *FileStore) Load(v any) error {
	data, err := os.ReadFile(s.path) //nolint:gosec // path comes from configuration
	if err != nil {
		return fmt.Errorf("read user data %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse user data %s: %w", s.path, err)
	}
	return nil
}
