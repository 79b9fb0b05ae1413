package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the store location used when none is configured.
const DefaultFileName = "user_profiles.json"

// FileStore persists profiles as a pretty-printed JSON document.
//
// Saves are atomic: the document is written to a temporary file in the
// destination directory and renamed over the target, so a crash mid-write
// never leaves a truncated or half-written store behind.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file path where profiles are stored.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the profile mapping from disk.
// Returns an empty mapping if the file does not exist.
func (s *FileStore) Load(_ context.Context) (Map, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(Map), nil
		}
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var profiles Map
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", s.path, err)
	}
	if profiles == nil {
		profiles = make(Map)
	}
	for _, p := range profiles {
		if p != nil {
			p.normalize()
		}
	}
	if err := profiles.Validate(); err != nil {
		return nil, fmt.Errorf("validating profile file %s: %w", s.path, err)
	}

	return profiles, nil
}

// Save writes the mapping to disk, creating the parent directory if needed.
// The document is pretty-printed with four-space indentation.
func (s *FileStore) Save(_ context.Context, profiles Map) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}

	data, err := json.MarshalIndent(profiles, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing profile file: %w", err)
	}
	return nil
}

// Close is a no-op; FileStore holds no handles between operations.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
