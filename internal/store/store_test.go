package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"murmur/internal/api"
	"murmur/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// memTokens is an in-memory token.Store.
type memTokens struct {
	mu  sync.Mutex
	tok string
}

func (m *memTokens) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tok, nil
}

func (m *memTokens) Set(_ context.Context, tok string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = tok
	return nil
}

func (m *memTokens) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = ""
	return nil
}

func (m *memTokens) current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tok
}

// newTestClient spins up a fake API served by mux and returns a client
// pointed at it.
func newTestClient(t *testing.T, mux *http.ServeMux) *api.Client {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := api.New(server.URL, api.WithTimeout(5*time.Second))
	require.NoError(t, err)
	return client
}

// newTestStore builds a store over a fake API with an empty token store.
func newTestStore(t *testing.T, mux *http.ServeMux) (*Store, *memTokens) {
	t.Helper()
	tokens := &memTokens{}
	return New(newTestClient(t, mux), tokens), tokens
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func fakeUser(id uint) models.User {
	return models.User{
		ID:       id,
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Profile: models.Profile{
			Name: gofakeit.Name(),
			Bio:  gofakeit.Sentence(6),
		},
		IsActive: true,
	}
}

func fakePost(id uint, author models.User) models.Post {
	return models.Post{
		ID:        id,
		Body:      gofakeit.Sentence(10),
		Author:    author,
		Likes:     models.Refs{},
		Comments:  models.Refs{},
		CreatedOn: time.Now().Add(-time.Duration(id) * time.Hour),
	}
}

func fakeComment(id uint, author models.User) models.Comment {
	return models.Comment{Post: fakePost(id, author)}
}
