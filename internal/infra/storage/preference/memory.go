package preference

import (
	"context"
	"sync"
)

// MemoryStore хранилище языка без Redis, живёт до рестарта
type MemoryStore struct {
	mu    sync.RWMutex
	langs map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{langs: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, visitorID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lang, ok := s.langs[visitorID]
	if !ok {
		return "", ErrPreferenceNotFound
	}
	return lang, nil
}

func (s *MemoryStore) Set(_ context.Context, visitorID, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.langs[visitorID] = lang
	return nil
}
