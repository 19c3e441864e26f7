package store

import (
	"context"

	"murmur/internal/models"
)

// CommentsState holds the accumulated comment sequence for one post. PostID
// names the sequence's identity; opening a different post resets the
// sequence before its first page is fetched.
type CommentsState struct {
	PostID   uint
	Comments []models.Comment
	HasNext  bool
	Loading  bool
	HasError bool
}

type commentsFetchStart struct{}

type resetComments struct {
	postID uint
}

type getCommentsSuccess struct {
	page models.CommentsPage
}

type addCommentSuccess struct {
	comment models.Comment
}

type editCommentSuccess struct {
	comment models.Comment
}

type deleteCommentSuccess struct {
	id uint
}

type updateCommentLikesSuccess struct {
	comment models.Comment
}

type commentsError struct{}

func (commentsFetchStart) isAction()        {}
func (resetComments) isAction()             {}
func (getCommentsSuccess) isAction()        {}
func (addCommentSuccess) isAction()         {}
func (editCommentSuccess) isAction()        {}
func (deleteCommentSuccess) isAction()      {}
func (updateCommentLikesSuccess) isAction() {}
func (commentsError) isAction()             {}

func reduceComments(st CommentsState, a Action) CommentsState {
	switch act := a.(type) {
	case commentsFetchStart:
		st.Loading = true
		st.HasError = false
	case resetComments:
		st.PostID = act.postID
		st.Comments = nil
		st.HasNext = false
		st.Loading = false
		st.HasError = false
	case getCommentsSuccess:
		st.Loading = false
		st.HasNext = act.page.HasNext
		st.Comments = append(cloneComments(st.Comments), act.page.Comments...)
	case addCommentSuccess:
		st.Loading = false
		st.Comments = append([]models.Comment{act.comment}, st.Comments...)
	case editCommentSuccess:
		st.Comments = reconcileComments(st.Comments, act.comment.ID, func(c models.Comment) models.Comment {
			c.Body = act.comment.Body
			return c
		})
		st.Loading = false
	case deleteCommentSuccess:
		comments := make([]models.Comment, 0, len(st.Comments))
		for _, c := range st.Comments {
			if c.ID != act.id {
				comments = append(comments, c)
			}
		}
		st.Comments = comments
		st.Loading = false
	case updateCommentLikesSuccess:
		st.Comments = reconcileComments(st.Comments, act.comment.ID, func(c models.Comment) models.Comment {
			c.Likes = act.comment.Likes
			return c
		})
		st.Loading = false
	case commentsError:
		st.Loading = false
		st.HasError = true
	}
	return st
}

func reconcileComments(comments []models.Comment, id uint, apply func(models.Comment) models.Comment) []models.Comment {
	out := cloneComments(comments)
	for i, c := range out {
		if c.ID == id {
			out[i] = apply(c)
		}
	}
	return out
}

// GetPostComments fetches one page of a post's comments and appends it.
// Opening a different post resets the sequence first; an in-flight fetch
// suppresses further triggers.
func (s *Store) GetPostComments(ctx context.Context, postID uint, page int) {
	st := s.State().Comments
	if st.PostID != postID {
		s.dispatch(resetComments{postID: postID})
		page = 1
	} else if st.Loading {
		return
	}

	s.dispatch(commentsFetchStart{})

	result, err := s.client.PostComments(ctx, postID, page)
	if err != nil {
		s.logger.WarnContext(ctx, "comments fetch failed", "post_id", postID, "page", page, "error", err)
		s.dispatch(commentsError{})
		return
	}
	s.dispatch(getCommentsSuccess{page: *result})
}

// AddComment comments on a post and prepends the result.
func (s *Store) AddComment(ctx context.Context, postID uint, body string) {
	comment, err := s.client.AddComment(ctx, postID, body)
	if err != nil {
		s.logger.WarnContext(ctx, "comment create failed", "post_id", postID, "error", err)
		s.dispatch(commentsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(addCommentSuccess{comment: *comment})
}

// ReplyComment replies to an existing comment and prepends the reply to the
// sequence.
func (s *Store) ReplyComment(ctx context.Context, postID, commentID uint, body string) {
	comment, err := s.client.ReplyComment(ctx, postID, commentID, body)
	if err != nil {
		s.logger.WarnContext(ctx, "comment reply failed", "post_id", postID, "comment_id", commentID, "error", err)
		s.dispatch(commentsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(addCommentSuccess{comment: *comment})
}

// EditComment replaces a comment's body, reconciling only that comment.
func (s *Store) EditComment(ctx context.Context, postID, commentID uint, body string) {
	comment, err := s.client.EditComment(ctx, postID, commentID, body)
	if err != nil {
		s.logger.WarnContext(ctx, "comment edit failed", "post_id", postID, "comment_id", commentID, "error", err)
		s.dispatch(commentsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(editCommentSuccess{comment: *comment})
}

// DeleteComment removes a comment and filters it out of the sequence.
func (s *Store) DeleteComment(ctx context.Context, postID, commentID uint) {
	deleted, err := s.client.DeleteComment(ctx, postID, commentID)
	if err != nil {
		s.logger.WarnContext(ctx, "comment delete failed", "post_id", postID, "comment_id", commentID, "error", err)
		s.dispatch(commentsError{})
		s.dispatch(setAlert{alert: alertFrom(err, "An error occurred while deleting comment, please try again.")})
		return
	}
	s.dispatch(deleteCommentSuccess{id: deleted})
}

// LikeComment likes a comment; the response's like set is reconciled into
// the matching comment only.
func (s *Store) LikeComment(ctx context.Context, postID, commentID uint) {
	comment, err := s.client.LikeComment(ctx, postID, commentID)
	if err != nil {
		s.logger.WarnContext(ctx, "comment like failed", "post_id", postID, "comment_id", commentID, "error", err)
		s.dispatch(commentsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(updateCommentLikesSuccess{comment: *comment})
}

// UnlikeComment removes a like, with the same reconciliation as LikeComment.
func (s *Store) UnlikeComment(ctx context.Context, postID, commentID uint) {
	comment, err := s.client.UnlikeComment(ctx, postID, commentID)
	if err != nil {
		s.logger.WarnContext(ctx, "comment unlike failed", "post_id", postID, "comment_id", commentID, "error", err)
		s.dispatch(commentsError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(updateCommentLikesSuccess{comment: *comment})
}
