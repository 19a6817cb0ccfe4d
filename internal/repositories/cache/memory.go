package cache

import (
	"context"
	"sync"
)

// MemoryTokenStore is an in-process token store used in tests and in
// deployments that run without Redis.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]string)}
}

func (s *MemoryTokenStore) SetToken(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sessionID] = token
	return nil
}

func (s *MemoryTokenStore) Token(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[sessionID], nil
}

func (s *MemoryTokenStore) DeleteToken(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sessionID)
	return nil
}
