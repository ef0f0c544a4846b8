package models

// PostsFileName is the collection name for wall posts
const PostsFileName = "posts"

// PostModel is a single wall post. Ids are creation-time-derived and
// monotonically increasing; posts are stored newest first.
type PostModel struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}
