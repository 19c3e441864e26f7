package api

import (
	"context"
	"fmt"

	"murmur/internal/models"
)

// Feed names accepted by the home feed endpoint.
const (
	FeedLatest = "latest"
	FeedTop    = "top"
)

// postBody is the request payload for creating or editing a post.
type postBody struct {
	Post string `json:"post"`
}

// HomeFeed fetches one page of the home feed. feed must be FeedLatest or
// FeedTop.
func (c *Client) HomeFeed(ctx context.Context, feed string, page int) (*models.PostsPage, error) {
	if feed != FeedLatest && feed != FeedTop {
		return nil, &Error{Message: fmt.Sprintf("unknown feed %q", feed)}
	}
	var out models.PostsPage
	path := fmt.Sprintf("/posts/%s/page/%d", feed, page)
	if err := c.get(ctx, "/posts/:feed/page/:n", path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/posts/%d", id)
	if err := c.get(ctx, "/posts/:id", path, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a post and returns it.
func (c *Client) CreatePost(ctx context.Context, body string) (*models.Post, error) {
	var post models.Post
	if err := c.post(ctx, "/posts", "/posts", postBody{Post: body}, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// EditPost replaces a post's body and returns the updated post.
func (c *Client) EditPost(ctx context.Context, id uint, body string) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/posts/%d", id)
	if err := c.put(ctx, "/posts/:id", path, postBody{Post: body}, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post and returns the id the server confirmed removed.
func (c *Client) DeletePost(ctx context.Context, id uint) (uint, error) {
	var deleted uint
	path := fmt.Sprintf("/posts/%d", id)
	if err := c.delete(ctx, "/posts/:id", path, &deleted); err != nil {
		return 0, err
	}
	return deleted, nil
}

// LikePost likes a post. The response is the full post with its updated like
// set; callers reconcile it into any accumulated sequence by id.
func (c *Client) LikePost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/posts/%d/likes", id)
	if err := c.post(ctx, "/posts/:id/likes", path, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UnlikePost removes a like and returns the post with its updated like set.
func (c *Client) UnlikePost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/posts/%d/likes", id)
	if err := c.delete(ctx, "/posts/:id/likes", path, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
