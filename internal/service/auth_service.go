package service

import (
	"fmt"

	"github.com/portal88/wallapi/internal/models"
	"github.com/portal88/wallapi/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and logout
type AuthService struct {
	users    *repository.UserRepository
	sessions *SessionService
	presence *PresenceService
}

// NewAuthService creates a new service for the auth API
func NewAuthService(users *repository.UserRepository, sessions *SessionService, presence *PresenceService) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		presence: presence,
	}
}

// Register creates a new account with a bcrypt-hashed password and
// persists the user collection
func (s *AuthService) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	return s.users.Create(models.UserModel{
		Username:       username,
		HashedPassword: string(hashedPassword),
	})
}

// Login verifies a credential pair and establishes a session. On success
// it returns the new session id and records a presence entry for it.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingFields
	}

	user, ok := s.users.GetByUsername(username)
	if !ok {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	sessionID := s.sessions.Create(username)
	s.presence.Touch(sessionID)
	return sessionID, nil
}

// Logout removes the presence entry for the session and invalidates it
// server-side. Always succeeds, including for anonymous callers.
func (s *AuthService) Logout(sessionID string) {
	if sessionID == "" {
		return
	}
	s.presence.Delete(sessionID)
	s.sessions.Destroy(sessionID)
}
