package api

import (
	"context"
	"fmt"

	"murmur/internal/models"
)

// PostComments fetches one page of a post's comments.
func (c *Client) PostComments(ctx context.Context, postID uint, page int) (*models.CommentsPage, error) {
	var out models.CommentsPage
	path := fmt.Sprintf("/posts/%d/comments/page/%d", postID, page)
	if err := c.get(ctx, "/posts/:id/comments/page/:n", path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddComment comments on a post and returns the created comment.
func (c *Client) AddComment(ctx context.Context, postID uint, body string) (*models.Comment, error) {
	var comment models.Comment
	path := fmt.Sprintf("/posts/%d/comments", postID)
	if err := c.post(ctx, "/posts/:id/comments", path, postBody{Post: body}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ReplyComment replies to an existing comment and returns the created reply.
func (c *Client) ReplyComment(ctx context.Context, postID, commentID uint, body string) (*models.Comment, error) {
	var comment models.Comment
	path := fmt.Sprintf("/posts/%d/comments/%d", postID, commentID)
	if err := c.post(ctx, "/posts/:id/comments/:cid", path, postBody{Post: body}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// EditComment replaces a comment's body and returns the updated comment.
func (c *Client) EditComment(ctx context.Context, postID, commentID uint, body string) (*models.Comment, error) {
	var comment models.Comment
	path := fmt.Sprintf("/posts/%d/comments/%d", postID, commentID)
	if err := c.put(ctx, "/posts/:id/comments/:cid", path, postBody{Post: body}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment deletes a comment and returns the id the server confirmed
// removed.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID uint) (uint, error) {
	var deleted uint
	path := fmt.Sprintf("/posts/%d/comments/%d", postID, commentID)
	if err := c.delete(ctx, "/posts/:id/comments/:cid", path, &deleted); err != nil {
		return 0, err
	}
	return deleted, nil
}

// LikeComment likes a comment and returns it with its updated like set.
func (c *Client) LikeComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	path := fmt.Sprintf("/posts/%d/comments/%d/likes", postID, commentID)
	if err := c.post(ctx, "/posts/:id/comments/:cid/likes", path, nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UnlikeComment removes a like and returns the comment with its updated like
// set.
func (c *Client) UnlikeComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	path := fmt.Sprintf("/posts/%d/comments/%d/likes", postID, commentID)
	if err := c.delete(ctx, "/posts/:id/comments/:cid/likes", path, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
