package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	maquetteerrors "github.com/alexisbeaulieu97/maquette/pkg/errors"
)

// storeFile is the on-disk representation of a FileStore.
type storeFile struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists key-value pairs to a single JSON file. Writes go
// through a temporary file followed by an atomic rename so a crash can
// never leave a half-written preference file behind.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// NewFileStore creates a FileStore backed by path and loads any existing
// contents. A missing file yields an empty store.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: "1.0",
		values:  make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse store file: %w", err)
	}

	s.version = file.Version
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

func (s *FileStore) save() error {
	file := storeFile{
		Version: s.version,
		Values:  s.values,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store file: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // Clean up temp file on failure
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Get retrieves a value by key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Set stores a value under key and persists the store.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	if err := s.save(); err != nil {
		return maquetteerrors.NewStoreError("set", key, err)
	}
	return nil
}

// Delete removes a key and persists the store. Absent keys are a no-op.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}

	delete(s.values, key)
	if err := s.save(); err != nil {
		return maquetteerrors.NewStoreError("delete", key, err)
	}
	return nil
}

// DefaultPath returns the standard location of the preference store,
// $XDG_CONFIG_HOME/maquette/preferences.json or the OS equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "maquette", "preferences.json"), nil
}
