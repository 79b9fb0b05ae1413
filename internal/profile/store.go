package profile

import (
	"context"
	"fmt"
	"sync"
)

// Store persists the complete username to profile mapping as one document.
//
// Load returns the entire mapping; a store with no data returns an empty,
// non-nil Map. Save replaces the entire mapping. Implementations validate
// loaded data and reject anything outside the closed vocabularies.
type Store interface {
	Load(ctx context.Context) (Map, error)
	Save(ctx context.Context, profiles Map) error
	Close() error
}

// MemoryStore keeps profiles in memory, for tests and ephemeral runs.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles Map
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(Map)}
}

// Load returns a deep copy of the stored mapping.
func (s *MemoryStore) Load(_ context.Context) (Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.profiles.Validate(); err != nil {
		return nil, fmt.Errorf("validating stored profiles: %w", err)
	}
	return s.profiles.Clone(), nil
}

// Save replaces the stored mapping with a deep copy of profiles.
func (s *MemoryStore) Save(_ context.Context, profiles Map) error {
	clone := profiles.Clone()
	s.mu.Lock()
	s.profiles = clone
	s.mu.Unlock()
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
