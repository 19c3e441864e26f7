package store

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"murmur/internal/api"
	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedMux(t *testing.T, pages map[string][]models.PostsPage) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/{feed}/page/{n}", func(w http.ResponseWriter, r *http.Request) {
		feed := pages[r.PathValue("feed")]
		n, err := strconv.Atoi(r.PathValue("n"))
		if err != nil || n < 1 || n > len(feed) {
			writeJSON(t, w, models.PostsPage{Posts: []models.Post{}})
			return
		}
		writeJSON(t, w, feed[n-1])
	})
	return mux
}

func TestGetHomeFeed_AccumulatesPages(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	pages := map[string][]models.PostsPage{
		api.FeedLatest: {
			{Posts: []models.Post{fakePost(1, author), fakePost(2, author)}, HasNext: true},
			{Posts: []models.Post{fakePost(3, author)}, HasNext: false},
		},
	}
	s, _ := newTestStore(t, feedMux(t, pages))

	s.GetHomeFeed(context.Background(), api.FeedLatest, 1)
	st := s.State().Posts
	require.Len(t, st.Posts, 2)
	assert.True(t, st.HasNext)
	assert.False(t, st.Loading)

	s.GetHomeFeed(context.Background(), api.FeedLatest, 2)
	st = s.State().Posts
	require.Len(t, st.Posts, 3, "pages append, never replace")
	assert.False(t, st.HasNext)

	seen := map[uint]bool{}
	for _, p := range st.Posts {
		assert.False(t, seen[p.ID], "duplicate post id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestGetHomeFeed_SwitchingFeedsResets(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	pages := map[string][]models.PostsPage{
		api.FeedLatest: {{Posts: []models.Post{fakePost(1, author)}, HasNext: true}},
		api.FeedTop:    {{Posts: []models.Post{fakePost(9, author)}, HasNext: false}},
	}
	s, _ := newTestStore(t, feedMux(t, pages))

	s.GetHomeFeed(context.Background(), api.FeedLatest, 1)
	require.Len(t, s.State().Posts.Posts, 1)

	s.GetHomeFeed(context.Background(), api.FeedTop, 1)
	st := s.State().Posts
	assert.Equal(t, api.FeedTop, st.Feed)
	require.Len(t, st.Posts, 1, "latest-feed posts must not merge into the top feed")
	assert.Equal(t, uint(9), st.Posts[0].ID)
}

func TestGetHomeFeed_FailureKeepsAccumulated(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	mux := http.NewServeMux()
	calls := 0
	mux.HandleFunc("GET /posts/latest/page/{n}", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			writeJSON(t, w, models.PostsPage{Posts: []models.Post{fakePost(1, author)}, HasNext: true})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	s, _ := newTestStore(t, mux)
	s.GetHomeFeed(context.Background(), api.FeedLatest, 1)
	s.GetHomeFeed(context.Background(), api.FeedLatest, 2)

	st := s.State().Posts
	assert.True(t, st.HasError)
	assert.False(t, st.Loading)
	require.Len(t, st.Posts, 1, "a failed page leaves the accumulated sequence intact")
}

func TestLikePost_ReconcilesExactlyOnePost(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	p1 := fakePost(1, author)
	p2 := fakePost(2, author)
	p3 := fakePost(3, author)

	liked := p2
	liked.Likes = models.Refs{{ID: author.ID}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/latest/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.PostsPage{Posts: []models.Post{p1, p2, p3}})
	})
	mux.HandleFunc("POST /posts/2/likes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, liked)
	})
	mux.HandleFunc("GET /users/likes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.Refs{{ID: 2}})
	})

	s, _ := newTestStore(t, mux)
	s.GetHomeFeed(context.Background(), api.FeedLatest, 1)
	before := s.State().Posts.Posts
	require.Len(t, before, 3)

	s.LikePost(context.Background(), 2)

	after := s.State().Posts.Posts
	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0], "untouched posts keep identity and values")
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, models.Refs{{ID: author.ID}}, after[1].Likes)
	assert.Equal(t, before[1].Body, after[1].Body, "only the like set changes")

	// Membership was refreshed wholesale from /users/likes.
	assert.True(t, s.State().User.Likes.Contains(2))
}

func TestUnlikePost_Reconciles(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	p := fakePost(4, author)
	p.Likes = models.Refs{{ID: 99}}

	unliked := p
	unliked.Likes = models.Refs{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/latest/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.PostsPage{Posts: []models.Post{p}})
	})
	mux.HandleFunc("DELETE /posts/4/likes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, unliked)
	})
	mux.HandleFunc("GET /users/likes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.Refs{})
	})

	s, _ := newTestStore(t, mux)
	s.GetHomeFeed(context.Background(), api.FeedLatest, 1)
	s.UnlikePost(context.Background(), 4)

	st := s.State().Posts
	assert.Empty(t, st.Posts[0].Likes)
}

func TestAddPost_Prepends(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	existing := fakePost(1, author)
	created := fakePost(2, author)
	created.Body = "fresh"

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/latest/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.PostsPage{Posts: []models.Post{existing}})
	})
	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, created)
	})

	s, _ := newTestStore(t, mux)
	s.GetHomeFeed(context.Background(), api.FeedLatest, 1)
	s.AddPost(context.Background(), "fresh")

	st := s.State()
	require.Len(t, st.Posts.Posts, 2)
	assert.Equal(t, uint(2), st.Posts.Posts[0].ID, "new post goes first")
	require.True(t, st.Alert.IsOpen)
	assert.Equal(t, models.SeveritySuccess, st.Alert.Alert.Severity)
}

func TestEditPost_ChangesBodyOnly(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	p := fakePost(1, author)
	p.Likes = models.Refs{{ID: 50}}

	edited := p
	edited.Body = "edited"
	edited.Likes = models.Refs{} // server response like-set is ignored by the edit reducer

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/latest/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.PostsPage{Posts: []models.Post{p}})
	})
	mux.HandleFunc("PUT /posts/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, edited)
	})

	s, _ := newTestStore(t, mux)
	s.GetHomeFeed(context.Background(), api.FeedLatest, 1)
	s.EditPost(context.Background(), 1, "edited")

	st := s.State().Posts
	assert.Equal(t, "edited", st.Posts[0].Body)
	assert.Equal(t, models.Refs{{ID: 50}}, st.Posts[0].Likes, "edit only touches the body")
}

func TestDeletePost_FiltersOut(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/latest/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.PostsPage{
			Posts: []models.Post{fakePost(1, author), fakePost(2, author)},
		})
	})
	mux.HandleFunc("DELETE /posts/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, uint(1))
	})

	s, _ := newTestStore(t, mux)
	s.GetHomeFeed(context.Background(), api.FeedLatest, 1)
	s.DeletePost(context.Background(), 1)

	st := s.State().Posts
	require.Len(t, st.Posts, 1)
	assert.Equal(t, uint(2), st.Posts[0].ID)
}

func TestGetPost_DetailSlot(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	p := fakePost(77, author)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/77", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, p)
	})

	s, _ := newTestStore(t, mux)
	s.GetPost(context.Background(), 77)

	st := s.State().Posts
	require.NotNil(t, st.Post)
	assert.Equal(t, uint(77), st.Post.ID)
}
