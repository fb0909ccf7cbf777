package repository

import (
	"context"
	"sync"

	"immo-assistant/internal/model"
)

// MemoryStore keeps sessions in process memory. Sessions are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	prefs    map[string]model.UserPreferences
	messages map[string][]model.Message
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prefs:    make(map[string]model.UserPreferences),
		messages: make(map[string][]model.Message),
	}
}

func (s *MemoryStore) CreateSession(_ context.Context, sessionID string, prefs model.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[sessionID] = prefs
	return nil
}

func (s *MemoryStore) GetPreferences(_ context.Context, sessionID string) (*model.UserPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefs, ok := s.prefs[sessionID]
	if !ok {
		return nil, nil
	}
	return &prefs, nil
}

func (s *MemoryStore) SavePreferences(_ context.Context, sessionID string, prefs model.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[sessionID] = prefs
	return nil
}

func (s *MemoryStore) AppendMessages(_ context.Context, sessionID string, messages ...model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[sessionID] = append(s.messages[sessionID], messages...)
	return nil
}

func (s *MemoryStore) ListMessages(_ context.Context, sessionID string) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.messages[sessionID]
	out := make([]model.Message, len(log))
	copy(out, log)
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
