package sentlog

import (
	"context"
	"sync"
)

// MemoryStore keeps the sent set in process memory. It is the default
// backend; the record does not survive a restart.
type MemoryStore struct {
	mu  sync.RWMutex
	ids map[string]bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[string]bool)}
}

func (s *MemoryStore) Sent(ctx context.Context) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.ids))
	for id := range s.ids {
		out[id] = true
	}
	return out, nil
}

func (s *MemoryStore) MarkSent(ctx context.Context, id string) error {
	s.mu.Lock()
	s.ids[id] = true
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.ids = make(map[string]bool)
	s.mu.Unlock()
	return nil
}
