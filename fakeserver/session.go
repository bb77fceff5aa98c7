package fakeserver

import (
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"

	"github.com/genotet/uploadbatch/tool"
)

// sessionStore maps issued session tokens to usernames until they expire.
type sessionStore struct {
	mu    sync.RWMutex
	users *ttlworker.Cache[string, string]
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{users: ttlworker.NewCache[string, string](ttl)}
}

func (s *sessionStore) Issue(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := tool.GenerateRandomUUID()
	s.users.Set(token, username)
	return token
}

// Lookup returns the username of a live session, "" otherwise.
func (s *sessionStore) Lookup(token string) string {
	if token == "" {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.Get(token)
}
