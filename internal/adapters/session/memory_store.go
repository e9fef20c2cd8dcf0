package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/validately/api/internal/core/ports"
)

// MemoryStore is the in-process decided-set store used when no Redis is
// configured. Sessions last as long as the process.
type MemoryStore struct {
	mu      sync.RWMutex
	decided map[string]map[uuid.UUID]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		decided: make(map[string]map[uuid.UUID]bool),
	}
}

func (s *MemoryStore) MarkDecided(ctx context.Context, identity string, cardID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.decided[identity]
	if !ok {
		set = make(map[uuid.UUID]bool)
		s.decided[identity] = set
	}
	set[cardID] = true
	return nil
}

func (s *MemoryStore) DecidedCards(ctx context.Context, identity string) (map[uuid.UUID]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[uuid.UUID]bool, len(s.decided[identity]))
	for id := range s.decided[identity] {
		out[id] = true
	}
	return out, nil
}

func (s *MemoryStore) Reset(ctx context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.decided, identity)
	return nil
}

var _ ports.DecidedSetStore = (*MemoryStore)(nil)
