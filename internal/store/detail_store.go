package store

import (
	"sync"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/details"
)

// DetailStore caches normalized detail results keyed by game id.
type DetailStore struct {
	mu      sync.RWMutex
	results map[int]details.Result
}

// NewDetailStore constructs an empty DetailStore.
func NewDetailStore() *DetailStore {
	return &DetailStore{results: make(map[int]details.Result)}
}

// Get returns a deep copy of the cached result for id.
func (s *DetailStore) Get(id int) (details.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.results[id]
	if !ok {
		return details.Result{}, false
	}
	return cloneResult(res), true
}

// Set stores a result for id, replacing any previous entry.
func (s *DetailStore) Set(id int, res details.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[id] = cloneResult(res)
}

func cloneResult(res details.Result) details.Result {
	res.Detail = res.Detail.Clone()
	res.Substituted = append([]string(nil), res.Substituted...)
	return res
}
