package cart

import (
	"context"
	"sync"
)

// MemStore keeps serialized ledgers in memory. Used by tests and by runs
// without a state directory or database.
type MemStore struct {
	mu sync.RWMutex
	m  map[string][]Line
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]Line)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Load(ctx context.Context, key string) ([]Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.m[key]
	if !ok {
		return nil, nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemStore) Save(ctx context.Context, key string, lines []Line) error {
	cp := make([]Line, len(lines))
	copy(cp, lines)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = cp
	return nil
}
