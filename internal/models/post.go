package models

import "time"

// Post represents a post in the Murmur application. Likes and Comments are
// id references; Author is embedded in full by the API.
type Post struct {
	ID        uint      `json:"id"`
	Body      string    `json:"body"`
	Author    User      `json:"author"`
	Likes     Refs      `json:"likes"`
	Comments  Refs      `json:"comments"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Comment is a post attached to a parent post, plus its own replies.
type Comment struct {
	Post
	Replies []Comment `json:"replies,omitempty"`
}
