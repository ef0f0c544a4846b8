// Package service contains the service layer for the Portal88 Wall API
package service

import "errors"

var (
	// ErrMissingFields is returned when a required field is empty
	ErrMissingFields = errors.New("username and password are required")

	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. Both cases share this error so the response does not reveal
	// which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotLoggedIn is returned when an anonymous caller hits a gated operation
	ErrNotLoggedIn = errors.New("login required")

	// ErrEmptyContent is returned when a post body trims down to nothing
	ErrEmptyContent = errors.New("content is required")
)
