package prefs

import (
	"context"
	"sync"
)

type Memory struct {
	mu sync.RWMutex
	m  map[string]Preferences
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]Preferences)}
}

func (s *Memory) Get(_ context.Context, sessionID string) (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[sessionID]
	if !ok {
		return Preferences{}, ErrNotFound
	}
	return p, nil
}

func (s *Memory) Put(_ context.Context, sessionID string, p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[sessionID] = p
	return nil
}

func (s *Memory) Close() error {
	return nil
}
