package service

import (
	"errors"
	"testing"

	"github.com/portal88/wallapi/internal/repository"
)

func newTestAuthService(t *testing.T) (*AuthService, *SessionService, *PresenceService) {
	t.Helper()
	store := repository.NewStore(t.TempDir())
	users := repository.NewUserRepository(store)
	sessions := NewSessionService()
	presence := NewPresenceService()
	return NewAuthService(users, sessions, presence), sessions, presence
}

func TestRegisterThenLogin(t *testing.T) {
	auth, sessions, presence := newTestAuthService(t)

	if err := auth.Register("ala", "pass123"); err != nil {
		t.Fatal(err)
	}
	sessionID, err := auth.Login("ala", "pass123")
	if err != nil {
		t.Fatal(err)
	}
	if got := sessions.Resolve(sessionID); got != "ala" {
		t.Fatalf("expected session for ala, got %q", got)
	}
	if presence.Count() != 1 {
		t.Fatalf("expected login to touch presence, count=%d", presence.Count())
	}
}

func TestLoginErrorsDoNotLeakWhichFieldFailed(t *testing.T) {
	auth, _, _ := newTestAuthService(t)
	if err := auth.Register("ala", "pass123"); err != nil {
		t.Fatal(err)
	}

	_, unknownUserErr := auth.Login("nobody", "pass123")
	_, wrongPasswordErr := auth.Login("ala", "wrong")

	if !errors.Is(unknownUserErr, ErrInvalidCredentials) || !errors.Is(wrongPasswordErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", unknownUserErr, wrongPasswordErr)
	}
	if unknownUserErr.Error() != wrongPasswordErr.Error() {
		t.Fatalf("error messages differ: %q vs %q", unknownUserErr, wrongPasswordErr)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth, _, _ := newTestAuthService(t)

	if err := auth.Register("", "pass123"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if err := auth.Register("ala", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if err := auth.Register("ala", "pass123"); err != nil {
		t.Fatal(err)
	}
	if err := auth.Register("ala", "other"); !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	auth, sessions, presence := newTestAuthService(t)
	if err := auth.Register("ala", "pass123"); err != nil {
		t.Fatal(err)
	}
	sessionID, err := auth.Login("ala", "pass123")
	if err != nil {
		t.Fatal(err)
	}

	auth.Logout(sessionID)
	if got := sessions.Resolve(sessionID); got != "" {
		t.Fatalf("expected anonymous after logout, got %q", got)
	}
	if presence.Count() != 0 {
		t.Fatalf("expected presence entry removed, count=%d", presence.Count())
	}

	// Logging out again, or anonymously, is a no-op
	auth.Logout(sessionID)
	auth.Logout("")
}
