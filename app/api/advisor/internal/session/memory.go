package session

import (
	"context"
	"encoding/json"
	"sync"

	"FinNavi/app/api/advisor/internal/agent/dialog"
)

// memoryStore is a process-local Store for tests and single-node dev runs.
// States are copied through JSON on both paths so callers never share a
// mutable state with the store.
type memoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (*dialog.State, error) {
	s.mu.RLock()
	raw, ok := s.items[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var st dialog.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	st.Normalize()
	return &st, nil
}

func (s *memoryStore) Put(_ context.Context, sessionID string, st *dialog.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items[sessionID] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.items, sessionID)
	s.mu.Unlock()
	return nil
}
