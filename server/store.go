package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Store keeps loaded maps in memory. Grids are immutable, so a reload swaps
// the stored pointer instead of mutating a grid that a running search may
// still be reading.
type Store struct {
	mu   sync.RWMutex
	maps map[uuid.UUID]*gridmap.Grid
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{maps: make(map[uuid.UUID]*gridmap.Grid)}
}

// Add stores g under a fresh random ID.
func (s *Store) Add(g *gridmap.Grid) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.maps[id] = g
	s.mu.Unlock()
	return id
}

// Get returns the grid stored under id.
func (s *Store) Get(id uuid.UUID) (*gridmap.Grid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.maps[id]
	return g, ok
}

// Replace swaps the grid stored under an existing id. It reports false if id is unknown.
func (s *Store) Replace(id uuid.UUID, g *gridmap.Grid) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.maps[id]; !ok {
		return false
	}
	s.maps[id] = g
	return true
}

// Delete removes id. It reports false if id is unknown.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.maps[id]; !ok {
		return false
	}
	delete(s.maps, id)
	return true
}

// Len is the number of stored maps.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.maps)
}
