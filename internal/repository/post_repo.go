package repository

import (
	"sync"
	"time"

	"github.com/portal88/wallapi/internal/models"
)

// createdAtLayout is the display timestamp format for posts and reports
const createdAtLayout = "2006-01-02 15:04:05"

// PostRepository owns the in-memory post collection, newest first, and
// mirrors every mutation to the store.
type PostRepository struct {
	store  *Store
	mu     sync.Mutex
	posts  []models.PostModel
	lastID int64
}

// NewPostRepository creates a new repository and loads the post collection
func NewPostRepository(store *Store) *PostRepository {
	r := &PostRepository{store: store, posts: []models.PostModel{}}
	store.Load(models.PostsFileName, &r.posts)
	for _, p := range r.posts {
		if p.ID > r.lastID {
			r.lastID = p.ID
		}
	}
	return r
}

// nextID derives an id from the wall clock in milliseconds, bumped past
// the last issued id so two posts created within the same millisecond
// cannot collide. Callers must hold the lock.
func (r *PostRepository) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// List returns a snapshot of all posts in stored order, newest first
func (r *PostRepository) List() []models.PostModel {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]models.PostModel, len(r.posts))
	copy(posts, r.posts)
	return posts
}

// Get gets a post by id
func (r *PostRepository) Get(id int64) (models.PostModel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.PostModel{}, false
}

// Create prepends a new post for the given user and persists the
// collection. Content is stored as given; trimming is the service's job.
func (r *PostRepository) Create(username, content string) (models.PostModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post := models.PostModel{
		ID:        r.nextID(),
		Content:   content,
		Username:  username,
		CreatedAt: time.Now().Format(createdAtLayout),
	}
	posts := append([]models.PostModel{post}, r.posts...)
	if err := r.store.Save(models.PostsFileName, posts); err != nil {
		return models.PostModel{}, err
	}
	r.posts = posts
	return post, nil
}

// Delete removes a post by id on behalf of the given user. Only the
// post's owner may delete it.
func (r *PostRepository) Delete(id int64, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for _, p := range r.posts {
		if p.ID == id {
			if p.Username != username {
				return ErrNotPostOwner
			}
			found = true
			break
		}
	}
	if !found {
		return ErrPostNotFound
	}
	posts := make([]models.PostModel, 0, len(r.posts)-1)
	for _, p := range r.posts {
		if p.ID != id {
			posts = append(posts, p)
		}
	}
	if err := r.store.Save(models.PostsFileName, posts); err != nil {
		return err
	}
	r.posts = posts
	return nil
}

// Count returns the number of posts
func (r *PostRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.posts)
}
