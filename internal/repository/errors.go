package repository

import "errors"

var (
	// ErrUsernameTaken is returned when registering an existing username
	ErrUsernameTaken = errors.New("username already exists")

	// ErrPostNotFound is returned when the referenced post does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostOwner is returned when deleting a post owned by someone else
	ErrNotPostOwner = errors.New("cannot delete another user's post")
)
