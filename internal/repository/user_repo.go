package repository

import (
	"sync"

	"github.com/portal88/wallapi/internal/models"
)

// UserRepository owns the in-memory user collection and mirrors every
// mutation to the store.
type UserRepository struct {
	store *Store
	mu    sync.Mutex
	users []models.UserModel
}

// NewUserRepository creates a new repository and loads the user collection
func NewUserRepository(store *Store) *UserRepository {
	r := &UserRepository{store: store, users: []models.UserModel{}}
	store.Load(models.UsersFileName, &r.users)
	return r
}

// GetByUsername gets a user by username, case-sensitive exact match
func (r *UserRepository) GetByUsername(username string) (models.UserModel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.UserModel{}, false
}

// Create appends a user and persists the collection. The in-memory
// collection is only updated once the write succeeds.
func (r *UserRepository) Create(user models.UserModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	users := append(r.users, user)
	if err := r.store.Save(models.UsersFileName, users); err != nil {
		return err
	}
	r.users = users
	return nil
}

// Count returns the number of registered users
func (r *UserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
