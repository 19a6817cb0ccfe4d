package checkout

import (
	"sync"

	"tienda/internal/models"
)

// sessionState is the ephemeral view state the page used to hold.
// selectedBank is nil until the user picks a bank; processing is true
// only for the span of the two sequential backend calls.
type sessionState struct {
	selectedBank *models.Bank
	processing   bool
}

type stateStore struct {
	mu     sync.Mutex
	states map[string]sessionState
}

func newStateStore() *stateStore {
	return &stateStore{states: make(map[string]sessionState)}
}

func (s *stateStore) get(sessionID string) sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[sessionID]
}

func (s *stateStore) setBank(sessionID string, bank *models.Bank) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[sessionID]
	st.selectedBank = bank
	s.states[sessionID] = st
}

// beginProcessing flips the processing flag on. It reports false when a
// submission is already in flight, so only one runs per session.
func (s *stateStore) beginProcessing(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[sessionID]
	if st.processing {
		return false
	}
	st.processing = true
	s.states[sessionID] = st
	return true
}

func (s *stateStore) endProcessing(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[sessionID]
	st.processing = false
	s.states[sessionID] = st
}
