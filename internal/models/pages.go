package models

// Paginated endpoints return one page of a resource plus a continuation flag.
// The resource key varies per endpoint; the flag is always "hasNext".

// PostsPage is one page of posts (home feed, a user's posts, a user's likes).
type PostsPage struct {
	Posts   []Post `json:"posts"`
	HasNext bool   `json:"hasNext"`
}

// CommentsPage is one page of comments under a post or authored by a user.
type CommentsPage struct {
	Comments []Comment `json:"comments"`
	HasNext  bool      `json:"hasNext"`
}

// UsersPage is one page of user accounts (followers-of, following).
type UsersPage struct {
	Following []User `json:"following"`
	HasNext   bool   `json:"hasNext"`
}
