package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// CatalogSnapshot is the cached catalog plus where it came from.
type CatalogSnapshot struct {
	Games    []games.Game
	Source   games.Source
	LoadedAt time.Time
}

// CatalogStore keeps a thread-safe, ordered catalog snapshot in memory.
type CatalogStore struct {
	mu       sync.RWMutex
	snapshot CatalogSnapshot
	index    map[int]int
	loaded   bool
}

// NewCatalogStore constructs an empty CatalogStore.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{index: make(map[int]int)}
}

// Snapshot returns a deep copy of the cached catalog, or false when nothing is cached.
func (s *CatalogStore) Snapshot() (CatalogSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return CatalogSnapshot{}, false
	}
	out := s.snapshot
	out.Games = games.CloneAll(s.snapshot.Games)
	return out, true
}

// GetGame retrieves a cached game by ID.
func (s *CatalogStore) GetGame(id int) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return games.Game{}, false
	}
	return s.snapshot.Games[pos].Clone(), true
}

// SetSnapshot replaces the cached catalog, keeping entry order.
func (s *CatalogStore) SetSnapshot(snap CatalogSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = CatalogSnapshot{
		Games:    games.CloneAll(snap.Games),
		Source:   snap.Source,
		LoadedAt: snap.LoadedAt,
	}
	s.index = make(map[int]int, len(snap.Games))
	for i, g := range s.snapshot.Games {
		if _, dup := s.index[g.ID]; !dup {
			s.index[g.ID] = i
		}
	}
	s.loaded = true
}
