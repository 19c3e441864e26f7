package store

import (
	"context"

	"murmur/internal/api"
	"murmur/internal/models"
)

// AuthState holds the session: the bearer token, whether it has been
// confirmed by the server, and the authenticated user's account.
type AuthState struct {
	IsAuthenticated bool
	Loading         bool
	Token           string
	User            *models.User
}

type authSuccess struct {
	user *models.User
}

type signinSuccess struct {
	token string
}

type authError struct{}

func (authSuccess) isAction()   {}
func (signinSuccess) isAction() {}
func (authError) isAction()     {}

func reduceAuth(st AuthState, a Action) AuthState {
	switch act := a.(type) {
	case authSuccess:
		st.Loading = false
		st.IsAuthenticated = true
		st.User = act.user
	case signinSuccess:
		st.Loading = false
		st.IsAuthenticated = true
		st.Token = act.token
	case authError:
		st.Token = ""
		st.Loading = false
		st.IsAuthenticated = false
		st.User = nil
	}
	return st
}

// GetAuthUser fetches the account owning the current token and marks the
// session authenticated. On failure the session is torn down: an invalid
// token is not worth keeping.
func (s *Store) GetAuthUser(ctx context.Context) {
	user, err := s.client.AuthUser(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "auth user fetch failed", "error", err)
		s.clearSession(ctx)
		return
	}
	s.dispatch(authSuccess{user: user})
}

// Signup creates an account, persists the returned token, and fetches the
// new account's profile.
func (s *Store) Signup(ctx context.Context, in api.RegisterInput) {
	resp, err := s.client.Register(ctx, in)
	if err != nil {
		s.logger.WarnContext(ctx, "signup failed", "error", err)
		s.clearSession(ctx)
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.signin(ctx, resp.Token)
}

// Login authenticates, persists the returned token, and fetches the
// account's profile. A rejected login raises an alert carrying the server's
// message and leaves the session unauthenticated with no stored token.
func (s *Store) Login(ctx context.Context, identity, password string) {
	resp, err := s.client.Login(ctx, api.LoginInput{Identity: identity, Password: password})
	if err != nil {
		s.logger.WarnContext(ctx, "login failed", "error", err)
		s.clearSession(ctx)
		alert := alertFrom(err, genericRetryMessage)
		alert.Duration = loginAlertDuration
		s.dispatch(setAlert{alert: alert})
		return
	}
	s.signin(ctx, resp.Token)
}

// Logout clears the viewed profile and membership slices first, then the
// session and persisted token. Clearing is unconditional, so the ordering
// only matters for observers that read intermediate snapshots.
func (s *Store) Logout(ctx context.Context) {
	s.dispatch(clearProfile{})
	s.clearSession(ctx)
}

func (s *Store) signin(ctx context.Context, tok string) {
	if tok != "" {
		if err := s.tokens.Set(ctx, tok); err != nil {
			s.logger.WarnContext(ctx, "failed to persist token", "error", err)
		}
	}
	s.dispatch(signinSuccess{token: tok})
	s.GetAuthUser(ctx)
}

// clearSession drops the token from memory and persistence together with the
// session state, keeping the token/isAuthenticated/user trio consistent.
func (s *Store) clearSession(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to clear persisted token", "error", err)
	}
	s.dispatch(authError{})
}
