package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"murmur/internal/models"
)

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Name string     `json:"name"`
	Bio  string     `json:"bio,omitempty"`
	DOB  *time.Time `json:"dob,omitempty"`
}

// GetProfile fetches a user's public profile by username.
func (c *Client) GetProfile(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	path := "/profile/" + url.PathEscape(username)
	if err := c.get(ctx, "/profile/:username", path, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the authenticated user's profile and returns the
// refreshed account.
func (c *Client) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	var user models.User
	if err := c.put(ctx, "/profile", "/profile", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteProfile deletes the authenticated user's account.
func (c *Client) DeleteProfile(ctx context.Context) error {
	return c.delete(ctx, "/profile", "/profile", nil)
}

// Follow follows the user with the given id. The response is the
// authoritative new following set, replacing any local copy wholesale.
func (c *Client) Follow(ctx context.Context, id uint) (models.Refs, error) {
	var following models.Refs
	path := fmt.Sprintf("/users/follow/%d", id)
	if err := c.post(ctx, "/users/follow/:id", path, nil, &following); err != nil {
		return nil, err
	}
	return following, nil
}

// Unfollow unfollows the user with the given id and returns the new
// following set.
func (c *Client) Unfollow(ctx context.Context, id uint) (models.Refs, error) {
	var following models.Refs
	path := fmt.Sprintf("/users/unfollow/%d", id)
	if err := c.post(ctx, "/users/unfollow/:id", path, nil, &following); err != nil {
		return nil, err
	}
	return following, nil
}

// Following fetches the authenticated user's full following set as id refs.
func (c *Client) Following(ctx context.Context) (models.Refs, error) {
	var following models.Refs
	if err := c.get(ctx, "/users/following", "/users/following", &following); err != nil {
		return nil, err
	}
	return following, nil
}

// LikedPosts fetches the ids of every post the authenticated user has liked.
func (c *Client) LikedPosts(ctx context.Context) (models.Refs, error) {
	var likes models.Refs
	if err := c.get(ctx, "/users/likes", "/users/likes", &likes); err != nil {
		return nil, err
	}
	return likes, nil
}
