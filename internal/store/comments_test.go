package store

import (
	"context"
	"net/http"
	"testing"

	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPostComments_AccumulatesPages(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/7/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{
			Comments: []models.Comment{fakeComment(1, author), fakeComment(2, author)},
			HasNext:  true,
		})
	})
	mux.HandleFunc("GET /posts/7/comments/page/2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{
			Comments: []models.Comment{fakeComment(3, author)},
		})
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 7, 1)
	st := s.State().Comments
	assert.Equal(t, uint(7), st.PostID)
	require.Len(t, st.Comments, 2)
	assert.True(t, st.HasNext)

	s.GetPostComments(context.Background(), 7, 2)
	st = s.State().Comments
	require.Len(t, st.Comments, 3)
	assert.False(t, st.HasNext)
}

func TestGetPostComments_SwitchingPostsResets(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/1/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{Comments: []models.Comment{fakeComment(10, author)}, HasNext: true})
	})
	mux.HandleFunc("GET /posts/2/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{Comments: []models.Comment{fakeComment(20, author)}})
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 1, 1)
	require.Len(t, s.State().Comments.Comments, 1)

	// Requesting page 3 of a different post still starts that post at page 1.
	s.GetPostComments(context.Background(), 2, 3)
	st := s.State().Comments
	assert.Equal(t, uint(2), st.PostID)
	require.Len(t, st.Comments, 1, "comments from the previous post must not survive the switch")
	assert.Equal(t, uint(20), st.Comments[0].ID)
}

func TestGetPostComments_FailureSetsError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/5/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 5, 1)

	st := s.State().Comments
	assert.True(t, st.HasError)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Comments)
}

func TestAddComment_Prepends(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	created := fakeComment(2, author)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/7/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{Comments: []models.Comment{fakeComment(1, author)}})
	})
	mux.HandleFunc("POST /posts/7/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, created)
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 7, 1)
	s.AddComment(context.Background(), 7, created.Body)

	st := s.State().Comments
	require.Len(t, st.Comments, 2)
	assert.Equal(t, uint(2), st.Comments[0].ID, "new comment goes first")
}

func TestReplyComment_PrependsReply(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	reply := fakeComment(3, author)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/7/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{Comments: []models.Comment{fakeComment(1, author)}})
	})
	mux.HandleFunc("POST /posts/7/comments/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, reply)
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 7, 1)
	s.ReplyComment(context.Background(), 7, 1, reply.Body)

	st := s.State().Comments
	require.Len(t, st.Comments, 2)
	assert.Equal(t, uint(3), st.Comments[0].ID)
}

func TestEditComment_ChangesBodyOnly(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	c := fakeComment(1, author)
	c.Likes = models.Refs{{ID: 9}}

	edited := c
	edited.Body = "edited"
	edited.Likes = models.Refs{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/7/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{Comments: []models.Comment{c}})
	})
	mux.HandleFunc("PUT /posts/7/comments/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, edited)
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 7, 1)
	s.EditComment(context.Background(), 7, 1, "edited")

	st := s.State().Comments
	assert.Equal(t, "edited", st.Comments[0].Body)
	assert.Equal(t, models.Refs{{ID: 9}}, st.Comments[0].Likes)
}

func TestDeleteComment_FiltersOut(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/7/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{
			Comments: []models.Comment{fakeComment(1, author), fakeComment(2, author)},
		})
	})
	mux.HandleFunc("DELETE /posts/7/comments/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, uint(1))
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 7, 1)
	s.DeleteComment(context.Background(), 7, 1)

	st := s.State().Comments
	require.Len(t, st.Comments, 1)
	assert.Equal(t, uint(2), st.Comments[0].ID)
}

func TestDeleteComment_FailureRaisesSpecificAlert(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /posts/7/comments/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	s, _ := newTestStore(t, mux)
	s.DeleteComment(context.Background(), 7, 1)

	st := s.State()
	assert.True(t, st.Comments.HasError)
	require.True(t, st.Alert.IsOpen)
	assert.Equal(t, "An error occurred while deleting comment, please try again.", st.Alert.Alert.Message)
}

func TestLikeComment_ReconcilesExactlyOneComment(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	c1 := fakeComment(1, author)
	c2 := fakeComment(2, author)

	liked := c2
	liked.Likes = models.Refs{{ID: author.ID}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/7/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{Comments: []models.Comment{c1, c2}})
	})
	mux.HandleFunc("POST /posts/7/comments/2/likes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, liked)
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 7, 1)
	before := s.State().Comments.Comments

	s.LikeComment(context.Background(), 7, 2)

	after := s.State().Comments.Comments
	require.Len(t, after, 2)
	assert.Equal(t, before[0], after[0], "the other comment is untouched")
	assert.Equal(t, models.Refs{{ID: author.ID}}, after[1].Likes)
	assert.Equal(t, before[1].Body, after[1].Body)
}

func TestUnlikeComment_Reconciles(t *testing.T) {
	t.Parallel()

	author := fakeUser(1)
	c := fakeComment(4, author)
	c.Likes = models.Refs{{ID: 99}}

	unliked := c
	unliked.Likes = models.Refs{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/7/comments/page/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CommentsPage{Comments: []models.Comment{c}})
	})
	mux.HandleFunc("DELETE /posts/7/comments/4/likes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, unliked)
	})

	s, _ := newTestStore(t, mux)
	s.GetPostComments(context.Background(), 7, 1)
	s.UnlikeComment(context.Background(), 7, 4)

	st := s.State().Comments
	assert.Empty(t, st.Comments[0].Likes)
}
