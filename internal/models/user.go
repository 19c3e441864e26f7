// Package models contains the wire-level data structures exchanged with the
// Murmur API and the normalized reference types derived from them.
package models

import "time"

// Profile holds the editable, public-facing part of a user account.
type Profile struct {
	Name      string     `json:"name"`
	Bio       string     `json:"bio,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	DOB       *time.Time `json:"dob,omitempty"`
	CreatedOn *time.Time `json:"created_on,omitempty"`
	UpdatedOn *time.Time `json:"updated_on,omitempty"`
}

// User represents a user account as returned by the API. Followers and
// Followed carry id references only; the full accounts are fetched through
// the paginated follower endpoints.
type User struct {
	ID              uint       `json:"id"`
	Email           string     `json:"email"`
	Username        string     `json:"username"`
	Profile         Profile    `json:"profile"`
	IsAdmin         bool       `json:"is_admin"`
	IsActive        bool       `json:"is_active"`
	SignInCount     int        `json:"sign_in_count"`
	LastSignInOn    *time.Time `json:"last_sign_in_on,omitempty"`
	CurrentSignInOn *time.Time `json:"current_sign_in_on,omitempty"`
	Followers       Refs       `json:"followers"`
	Followed        Refs       `json:"followed"`
}
