package api

import (
	"context"
	"fmt"
	"net/url"

	"murmur/internal/models"
)

// Paginated per-user resources. Pages are 1-based; each response carries the
// page of items plus a hasNext continuation flag.

// UserFollowing fetches one page of the accounts the named user follows.
func (c *Client) UserFollowing(ctx context.Context, username string, page int) (*models.UsersPage, error) {
	var out models.UsersPage
	path := fmt.Sprintf("/users/%s/following/page/%d", url.PathEscape(username), page)
	if err := c.get(ctx, "/users/:username/following/page/:n", path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserPosts fetches one page of the named user's posts.
func (c *Client) UserPosts(ctx context.Context, username string, page int) (*models.PostsPage, error) {
	var out models.PostsPage
	path := fmt.Sprintf("/users/%s/posts/page/%d", url.PathEscape(username), page)
	if err := c.get(ctx, "/users/:username/posts/page/:n", path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserLikes fetches one page of the posts the named user has liked.
func (c *Client) UserLikes(ctx context.Context, username string, page int) (*models.PostsPage, error) {
	var out models.PostsPage
	path := fmt.Sprintf("/users/%s/likes/page/%d", url.PathEscape(username), page)
	if err := c.get(ctx, "/users/:username/likes/page/:n", path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserComments fetches one page of the named user's comments.
func (c *Client) UserComments(ctx context.Context, username string, page int) (*models.CommentsPage, error) {
	var out models.CommentsPage
	path := fmt.Sprintf("/users/%s/comments/page/%d", url.PathEscape(username), page)
	if err := c.get(ctx, "/users/:username/comments/page/:n", path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
