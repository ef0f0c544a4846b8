package service

import (
	"testing"
	"time"
)

func TestPresenceWindowBoundary(t *testing.T) {
	presence := NewPresenceService()
	presence.Touch("s1")
	touched := time.Now()

	presence.Prune(touched.Add(4*time.Minute + 59*time.Second))
	if got := presence.Count(); got != 1 {
		t.Fatalf("expected session inside the window to survive, count=%d", got)
	}

	presence.Prune(touched.Add(5*time.Minute + time.Second))
	if got := presence.Count(); got != 0 {
		t.Fatalf("expected session outside the window to be pruned, count=%d", got)
	}
}

func TestPresenceCountsDistinctSessions(t *testing.T) {
	presence := NewPresenceService()
	presence.Touch("s1")
	presence.Touch("s2")
	presence.Touch("s1")
	if got := presence.Count(); got != 2 {
		t.Fatalf("expected 2 distinct sessions, got %d", got)
	}
}

func TestPresenceDelete(t *testing.T) {
	presence := NewPresenceService()
	presence.Touch("s1")
	presence.Delete("s1")
	if got := presence.Count(); got != 0 {
		t.Fatalf("expected 0 after delete, got %d", got)
	}
	// Deleting an untracked session is a no-op
	presence.Delete("s2")
}
