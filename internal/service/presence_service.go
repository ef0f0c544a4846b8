package service

import (
	"sync"
	"time"
)

// PresenceWindow is the inactivity threshold after which a session is no
// longer counted as online.
const PresenceWindow = 5 * time.Minute

// PresenceService tracks the last activity time per session. Entries live
// in memory only and are lost on restart; the count is advisory. Pruning
// happens as a side effect of request handling, not on a timer, so under
// zero traffic stale entries persist until the next request.
type PresenceService struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// NewPresenceService creates a new presence tracker
func NewPresenceService() *PresenceService {
	return &PresenceService{lastSeen: make(map[string]time.Time)}
}

// Touch records activity for a session
func (s *PresenceService) Touch(sessionID string) {
	s.mu.Lock()
	s.lastSeen[sessionID] = time.Now()
	s.mu.Unlock()
}

// Prune drops sessions that have been inactive for longer than the
// presence window as of the given time
func (s *PresenceService) Prune(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.lastSeen {
		if now.Sub(t) > PresenceWindow {
			delete(s.lastSeen, id)
		}
	}
}

// Delete removes a session's presence entry
func (s *PresenceService) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.lastSeen, sessionID)
	s.mu.Unlock()
}

// Count returns the number of sessions currently tracked
func (s *PresenceService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lastSeen)
}
