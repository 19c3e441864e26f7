package store

import (
	"context"

	"murmur/internal/models"
)

// PostsState holds the home feed's accumulated post sequence plus the single
// post opened in the detail view. Feed names the sequence's identity; pages
// append, and switching feeds resets the sequence before the first fetch of
// the new feed.
type PostsState struct {
	Feed     string
	Posts    []models.Post
	Post     *models.Post
	HasNext  bool
	Loading  bool
	HasError bool
}

type postsFetchStart struct{}

type resetPosts struct {
	feed string
}

type getPostsSuccess struct {
	page models.PostsPage
}

type getPostSuccess struct {
	post *models.Post
}

type addPostSuccess struct {
	post models.Post
}

type editPostSuccess struct {
	post models.Post
}

type deletePostSuccess struct {
	id uint
}

type updateLikesSuccess struct {
	post models.Post
}

type postsError struct{}

func (postsFetchStart) isAction()    {}
func (resetPosts) isAction()         {}
func (getPostsSuccess) isAction()    {}
func (getPostSuccess) isAction()     {}
func (addPostSuccess) isAction()     {}
func (editPostSuccess) isAction()    {}
func (deletePostSuccess) isAction()  {}
func (updateLikesSuccess) isAction() {}
func (postsError) isAction()         {}

func reducePosts(st PostsState, a Action) PostsState {
	switch act := a.(type) {
	case postsFetchStart:
		st.Loading = true
		st.HasError = false
	case resetPosts:
		st.Feed = act.feed
		st.Posts = nil
		st.HasNext = false
		st.Loading = false
		st.HasError = false
	case getPostsSuccess:
		st.Loading = false
		st.HasNext = act.page.HasNext
		st.Posts = append(clonePosts(st.Posts), act.page.Posts...)
	case getPostSuccess:
		st.Loading = false
		st.Post = act.post
	case addPostSuccess:
		st.Loading = false
		st.Posts = append([]models.Post{act.post}, st.Posts...)
	case editPostSuccess:
		st.Posts = reconcilePosts(st.Posts, act.post.ID, func(p models.Post) models.Post {
			p.Body = act.post.Body
			return p
		})
		st.Loading = false
	case deletePostSuccess:
		posts := make([]models.Post, 0, len(st.Posts))
		for _, p := range st.Posts {
			if p.ID != act.id {
				posts = append(posts, p)
			}
		}
		st.Posts = posts
		st.Loading = false
	case updateLikesSuccess:
		st.Posts = reconcilePosts(st.Posts, act.post.ID, func(p models.Post) models.Post {
			p.Likes = act.post.Likes
			return p
		})
		if st.Post != nil && st.Post.ID == act.post.ID {
			detail := *st.Post
			detail.Likes = act.post.Likes
			st.Post = &detail
		}
		st.Loading = false
	case postsError:
		st.Loading = false
		st.HasError = true
	}
	return st
}

// reconcilePosts replaces exactly the post matching id via apply, leaving
// every other element untouched by identity and value.
func reconcilePosts(posts []models.Post, id uint, apply func(models.Post) models.Post) []models.Post {
	out := clonePosts(posts)
	for i, p := range out {
		if p.ID == id {
			out[i] = apply(p)
		}
	}
	return out
}

// GetHomeFeed fetches one page of the home feed and appends it. Switching
// feed resets the accumulated sequence before the fetch. A fetch already in
// flight or a request for a non-next page is ignored, keeping pagination
// sequential.
func (s *Store) GetHomeFeed(ctx context.Context, feed string, page int) {
	st := s.State().Posts
	if st.Feed != feed {
		s.dispatch(resetPosts{feed: feed})
		page = 1
	} else if st.Loading {
		return
	}

	s.dispatch(postsFetchStart{})

	result, err := s.client.HomeFeed(ctx, feed, page)
	if err != nil {
		s.logger.WarnContext(ctx, "home feed fetch failed", "feed", feed, "page", page, "error", err)
		s.dispatch(postsError{})
		return
	}
	s.dispatch(getPostsSuccess{page: *result})
}

// GetPost fetches one post into the detail slot.
func (s *Store) GetPost(ctx context.Context, id uint) {
	s.dispatch(postsFetchStart{})

	post, err := s.client.GetPost(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "post fetch failed", "post_id", id, "error", err)
		s.dispatch(postsError{})
		return
	}
	s.dispatch(getPostSuccess{post: post})
}

// AddPost creates a post and prepends it to the accumulated sequence.
func (s *Store) AddPost(ctx context.Context, body string) {
	post, err := s.client.CreatePost(ctx, body)
	if err != nil {
		s.logger.WarnContext(ctx, "post create failed", "error", err)
		s.dispatch(postsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(addPostSuccess{post: *post})
	s.dispatch(setAlert{alert: models.Alert{
		Message:  "Successfully added post",
		Severity: models.SeveritySuccess,
		Duration: defaultAlertDuration,
	}})
}

// EditPost replaces a post's body, reconciling only that post in place.
func (s *Store) EditPost(ctx context.Context, id uint, body string) {
	post, err := s.client.EditPost(ctx, id, body)
	if err != nil {
		s.logger.WarnContext(ctx, "post edit failed", "post_id", id, "error", err)
		s.dispatch(postsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(editPostSuccess{post: *post})
	s.dispatch(setAlert{alert: models.Alert{
		Message:  "Successfully updated post",
		Severity: models.SeveritySuccess,
		Duration: defaultAlertDuration,
	}})
}

// DeletePost removes a post from the server and filters it out of the
// accumulated sequence.
func (s *Store) DeletePost(ctx context.Context, id uint) {
	deleted, err := s.client.DeletePost(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "post delete failed", "post_id", id, "error", err)
		s.dispatch(postsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(deletePostSuccess{id: deleted})
}

// LikePost likes a post. The response carries the authoritative like set,
// which is reconciled into the matching post only; the user's liked-post
// membership is then refreshed wholesale.
func (s *Store) LikePost(ctx context.Context, id uint) {
	post, err := s.client.LikePost(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "post like failed", "post_id", id, "error", err)
		s.dispatch(postsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(updateLikesSuccess{post: *post})
	s.GetUserLikes(ctx)
}

// UnlikePost removes a like, with the same reconciliation as LikePost.
func (s *Store) UnlikePost(ctx context.Context, id uint) {
	post, err := s.client.UnlikePost(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "post unlike failed", "post_id", id, "error", err)
		s.dispatch(postsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(updateLikesSuccess{post: *post})
	s.GetUserLikes(ctx)
}
