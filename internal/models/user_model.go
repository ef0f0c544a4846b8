// Package models contains the models for the Portal88 Wall API
package models

// UsersFileName is the collection name for registered users
const UsersFileName = "users"

// UserModel is a registered account. Usernames are unique and compared
// case-sensitively. The hash is stored under the "password" key in
// users.json.
type UserModel struct {
	Username       string `json:"username"`
	HashedPassword string `json:"password"`
}
