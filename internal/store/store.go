// Package store implements the centralized application state: one snapshot
// composed of independent entity slices, mutated only by reducers in response
// to dispatched actions. Asynchronous orchestrators perform one API call each
// and dispatch the outcome; a failure never escapes an orchestrator, it is
// converted into slice error state and, for mutations, a transient alert.
package store

import (
	"context"
	"sync"

	"murmur/internal/api"
	"murmur/internal/models"
	"murmur/internal/observability"
	"murmur/internal/token"
)

// State is the composed read-only snapshot of every slice.
type State struct {
	Auth     AuthState
	User     UserState
	Posts    PostsState
	Comments CommentsState
	Alert    AlertState
}

// Listener is notified with a fresh snapshot after every dispatch.
type Listener func(State)

// Store owns the state and serializes all mutation through dispatch.
type Store struct {
	mu        sync.Mutex
	state     State
	client    *api.Client
	tokens    token.Store
	logger    *observability.Logger
	listeners []Listener
}

// New creates a store wired to the API client and token persistence. The
// persisted token (if any, and not expired) is loaded into the auth slice,
// and the client is pointed at the store for bearer tokens, so every request
// picks up credentials from one place.
func New(client *api.Client, tokens token.Store) *Store {
	s := &Store{
		client: client,
		tokens: tokens,
		logger: observability.GlobalLogger,
		state: State{
			Auth:  AuthState{Loading: true},
			User:  UserState{Loading: true},
			Posts: PostsState{Loading: true},
			Comments: CommentsState{
				Loading: true,
			},
		},
	}

	ctx := context.Background()
	if tok, err := tokens.Get(ctx); err == nil && tok != "" {
		if token.Expired(tok) {
			_ = tokens.Clear(ctx)
		} else {
			s.state.Auth.Token = tok
		}
	}

	client.SetTokenFunc(func(context.Context) string {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.state.Auth.Token
	})

	return s
}

// State returns a snapshot. Slices within it are copies; mutating them does
// not affect the store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Client returns the underlying API client, for views that page resources
// through their own cursor (the profile tabs) rather than a slice.
func (s *Store) Client() *api.Client {
	return s.client
}

// Subscribe registers a listener called after every dispatch with the new
// snapshot. Listeners run on the dispatching goroutine.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Action marks the types a reducer can respond to.
type Action interface {
	isAction()
}

// dispatch runs every slice reducer against the action and notifies
// listeners. Reducers are the only code that writes state.
func (s *Store) dispatch(a Action) {
	s.mu.Lock()
	s.state.Auth = reduceAuth(s.state.Auth, a)
	s.state.User = reduceUser(s.state.User, a)
	s.state.Posts = reducePosts(s.state.Posts, a)
	s.state.Comments = reduceComments(s.state.Comments, a)
	s.state.Alert = reduceAlert(s.state.Alert, a)

	snapshot := s.state.clone()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (st State) clone() State {
	out := st
	out.User.Following = cloneRefs(st.User.Following)
	out.User.Likes = cloneRefs(st.User.Likes)
	out.Posts.Posts = clonePosts(st.Posts.Posts)
	out.Comments.Comments = cloneComments(st.Comments.Comments)
	return out
}

func cloneRefs(in models.Refs) models.Refs {
	if in == nil {
		return nil
	}
	out := make(models.Refs, len(in))
	copy(out, in)
	return out
}

func clonePosts(in []models.Post) []models.Post {
	if in == nil {
		return nil
	}
	out := make([]models.Post, len(in))
	copy(out, in)
	return out
}

func cloneComments(in []models.Comment) []models.Comment {
	if in == nil {
		return nil
	}
	out := make([]models.Comment, len(in))
	copy(out, in)
	return out
}
