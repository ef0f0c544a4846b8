package repository

import (
	"errors"
	"testing"

	"github.com/portal88/wallapi/internal/models"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	store := NewStore(t.TempDir())
	repo := NewUserRepository(store)

	if err := repo.Create(models.UserModel{Username: "ala", HashedPassword: "hash"}); err != nil {
		t.Fatal(err)
	}
	user, ok := repo.GetByUsername("ala")
	if !ok || user.HashedPassword != "hash" {
		t.Fatalf("expected stored user, got %+v ok=%v", user, ok)
	}
	if _, ok := repo.GetByUsername("ola"); ok {
		t.Fatal("expected unknown username to miss")
	}
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	store := NewStore(t.TempDir())
	repo := NewUserRepository(store)

	if err := repo.Create(models.UserModel{Username: "ala"}); err != nil {
		t.Fatal(err)
	}
	err := repo.Create(models.UserModel{Username: "ala"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	// Usernames are case-sensitive, so a different casing is a new user
	if err := repo.Create(models.UserModel{Username: "Ala"}); err != nil {
		t.Fatalf("expected case-sensitive uniqueness, got %v", err)
	}
}

func TestUserRepositoryPersistsAcrossReload(t *testing.T) {
	store := NewStore(t.TempDir())
	repo := NewUserRepository(store)
	if err := repo.Create(models.UserModel{Username: "ala", HashedPassword: "hash"}); err != nil {
		t.Fatal(err)
	}

	reloaded := NewUserRepository(store)
	if reloaded.Count() != 1 {
		t.Fatalf("expected 1 user after reload, got %d", reloaded.Count())
	}
}
