// Package conversation manages chat sessions and turns engine output
// into user-facing text.
package conversation

import (
	"sync"

	"github.com/jmallard/compass/internal/domain"
)

// SessionStore holds live sessions by id. Callers must serialize turns
// on the same session id; the store itself only guards its own map.
type SessionStore interface {
	Get(id string) (*domain.Session, bool)
	Put(s *domain.Session)
	Delete(id string)
}

// MemorySessionStore is the default in-process store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *MemorySessionStore) Get(id string) (*domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *MemorySessionStore) Put(s *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

func (m *MemorySessionStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
