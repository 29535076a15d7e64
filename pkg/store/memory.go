package store

import (
	"context"
	"sort"
	"sync"

	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// MemoryStore keeps puzzles in a map guarded by a mutex.
// Used by tests and single-instance deployments without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	puzzles map[string]*puzzle.Puzzle
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		puzzles: make(map[string]*puzzle.Puzzle),
	}
}

// Put stores a puzzle, replacing any existing document with the same ID.
func (s *MemoryStore) Put(ctx context.Context, p *puzzle.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[p.ID] = p
	return nil
}

// Get retrieves a puzzle by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.puzzles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Delete removes a puzzle by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.puzzles[id]; !ok {
		return ErrNotFound
	}
	delete(s.puzzles, id)
	return nil
}

// List returns the IDs of all stored puzzles in sorted order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.puzzles))
	for id := range s.puzzles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
