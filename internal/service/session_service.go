package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the absolute lifetime of a session, matching the cookie max-age
const SessionTTL = 24 * time.Hour

type sessionEntry struct {
	Username  string
	ExpiresAt time.Time
}

// SessionService owns the server-side session table mapping opaque session
// ids to usernames. Sessions are single-process and lost on restart.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
}

// NewSessionService creates a new session table
func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]sessionEntry)}
}

// Create issues a new opaque session id for the given username with an
// absolute expiry of SessionTTL from now
func (s *SessionService) Create(username string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = sessionEntry{
		Username:  username,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	s.mu.Unlock()
	return id
}

// Resolve returns the username for a live session, or the empty string
// when the id is unknown or expired. Expired entries are removed.
func (s *SessionService) Resolve(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return ""
	}
	if time.Now().After(entry.ExpiresAt) {
		delete(s.sessions, id)
		return ""
	}
	return entry.Username
}

// Destroy invalidates a session. Requests carrying the old id are treated
// as anonymous from then on.
func (s *SessionService) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// SweepExpired removes sessions past their absolute expiry and returns
// how many were removed. Run periodically by the cron service.
func (s *SessionService) SweepExpired() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.sessions {
		if now.After(entry.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of live session entries
func (s *SessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
