package service

import (
	"strings"

	"github.com/portal88/wallapi/internal/models"
	"github.com/portal88/wallapi/internal/repository"
)

// PostService handles the wall post operations
type PostService struct {
	posts *repository.PostRepository
}

// NewPostService creates a new service for the post API
func NewPostService(posts *repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// ListPosts returns all posts, newest first. Posts are public; no caller
// identity is required.
func (s *PostService) ListPosts() []models.PostModel {
	return s.posts.List()
}

// CreatePost creates a post for the given user. Content is trimmed and
// must not end up empty.
func (s *PostService) CreatePost(username, content string) (models.PostModel, error) {
	if username == "" {
		return models.PostModel{}, ErrNotLoggedIn
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return models.PostModel{}, ErrEmptyContent
	}
	return s.posts.Create(username, content)
}

// DeletePost removes a post owned by the given user
func (s *PostService) DeletePost(username string, id int64) error {
	if username == "" {
		return ErrNotLoggedIn
	}
	return s.posts.Delete(id, username)
}
