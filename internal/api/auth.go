package api

import (
	"context"

	"murmur/internal/models"
)

// RegisterInput carries the fields for account creation.
type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput carries credentials. Identity is a username or email address.
type LoginInput struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthUser fetches the account that owns the current bearer token.
func (c *Client) AuthUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/user", "/auth/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates an account and returns its bearer token.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.post(ctx, "/auth/register", "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns a bearer token.
func (c *Client) Login(ctx context.Context, in LoginInput) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.post(ctx, "/auth/login", "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
