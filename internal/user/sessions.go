package user

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions maps opaque bearer tokens to user ids. Tokens are ephemeral and
// live in process memory regardless of the backing user store; a restart
// logs everyone out.
type Sessions struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewSessions() *Sessions {
	return &Sessions{tokens: make(map[string]string)}
}

func (s *Sessions) Issue(userID string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()
	return token
}

func (s *Sessions) Resolve(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	return id, ok
}

func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
