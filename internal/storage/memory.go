package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage keeps presentations in a process-local map. Contents are
// lost on restart; intended for tests and local development.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[uuid.UUID][]byte
}

// Ensure MemoryStorage implements the Storage interface.
var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory Storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[uuid.UUID][]byte)}
}

// Save implements Storage.Save. The stored bytes are copied so later
// mutation of the caller's slice cannot corrupt the store.
func (s *MemoryStorage) Save(_ context.Context, id uuid.UUID, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = buf
	return nil
}

// Get implements Storage.Get. The returned slice is a copy.
func (s *MemoryStorage) Get(_ context.Context, id uuid.UUID) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

// Exists implements Storage.Exists.
func (s *MemoryStorage) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok, nil
}

// Delete implements Storage.Delete.
func (s *MemoryStorage) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.items, id)
	return nil
}
