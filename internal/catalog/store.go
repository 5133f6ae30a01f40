package catalog

import (
	"sync"

	"blendfolio/types"
)

// Store is an in-memory strategy catalog. It keeps insertion order so
// reports and allocations stay stable across refreshes, and is safe for
// concurrent use by the refresher and the simulation path.
type Store struct {
	mu        sync.RWMutex
	order     []string
	byID      map[string]*types.Strategy
	benchmark *types.Strategy
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*types.Strategy)}
}

// Put inserts or replaces a strategy. A replaced strategy keeps its
// original position.
func (s *Store) Put(strategy *types.Strategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[strategy.ID]; !exists {
		s.order = append(s.order, strategy.ID)
	}
	s.byID[strategy.ID] = strategy
}

func (s *Store) Get(id string) (*types.Strategy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	strategy, ok := s.byID[id]
	return strategy, ok
}

// All returns every strategy in insertion order.
func (s *Store) All() []*types.Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Strategy, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Active returns the strategies the allocation assigns a positive weight,
// in insertion order.
func (s *Store) Active(alloc types.Allocation) []*types.Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*types.Strategy
	for _, id := range s.order {
		if alloc.Weight(id) > 0 {
			out = append(out, s.byID[id])
		}
	}
	return out
}

func (s *Store) SetBenchmark(strategy *types.Strategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.benchmark = strategy
}

// Benchmark returns the benchmark strategy, or nil when none is loaded.
func (s *Store) Benchmark() *types.Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.benchmark
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
