package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Username  string
	CreatedAt time.Time
}

// SessionStore keeps the authenticated flag server-side behind an opaque
// token. Sessions live until an explicit logout destroys them.
type SessionStore interface {
	Create(username string) string
	Get(token string) (Session, bool)
	Destroy(token string)
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session)}
}

func (s *MemorySessionStore) Create(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = Session{Username: username, CreatedAt: time.Now()}
	s.mu.Unlock()
	return token
}

func (s *MemorySessionStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}

func (s *MemorySessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
