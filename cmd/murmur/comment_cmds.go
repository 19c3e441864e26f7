package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment <post-id> <body>...",
	Short: "Comment on a post, or reply with --reply-to",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0])
		if err != nil {
			return err
		}
		body := strings.Join(args[1:], " ")

		replyTo, _ := cmd.Flags().GetUint("reply-to")
		if replyTo != 0 {
			appStore.ReplyComment(cmd.Context(), postID, replyTo, body)
		} else {
			appStore.AddComment(cmd.Context(), postID, body)
		}
		drainAlert()

		st := appStore.State().Comments
		if st.HasError {
			return errors.New("comment failed")
		}
		fmt.Printf("Commented #%d\n", st.Comments[0].ID)
		return nil
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "comment-edit <post-id> <comment-id> <body>...",
	Short: "Edit a comment",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0])
		if err != nil {
			return err
		}
		commentID, err := parseID(args[1])
		if err != nil {
			return err
		}
		appStore.EditComment(cmd.Context(), postID, commentID, strings.Join(args[2:], " "))
		drainAlert()
		if appStore.State().Comments.HasError {
			return errors.New("comment edit failed")
		}
		return nil
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "comment-delete <post-id> <comment-id>",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0])
		if err != nil {
			return err
		}
		commentID, err := parseID(args[1])
		if err != nil {
			return err
		}
		appStore.DeleteComment(cmd.Context(), postID, commentID)
		drainAlert()
		if appStore.State().Comments.HasError {
			return errors.New("comment delete failed")
		}
		fmt.Printf("Deleted comment #%d\n", commentID)
		return nil
	},
}

var commentLikeCmd = &cobra.Command{
	Use:   "comment-like <post-id> <comment-id>",
	Short: "Like a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0])
		if err != nil {
			return err
		}
		commentID, err := parseID(args[1])
		if err != nil {
			return err
		}
		appStore.LikeComment(cmd.Context(), postID, commentID)
		drainAlert()
		if appStore.State().Comments.HasError {
			return errors.New("comment like failed")
		}
		return nil
	},
}

var commentUnlikeCmd = &cobra.Command{
	Use:   "comment-unlike <post-id> <comment-id>",
	Short: "Remove a like from a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0])
		if err != nil {
			return err
		}
		commentID, err := parseID(args[1])
		if err != nil {
			return err
		}
		appStore.UnlikeComment(cmd.Context(), postID, commentID)
		drainAlert()
		if appStore.State().Comments.HasError {
			return errors.New("comment unlike failed")
		}
		return nil
	},
}

func init() {
	commentCmd.Flags().Uint("reply-to", 0, "comment id to reply to")
	rootCmd.AddCommand(commentCmd, commentEditCmd, commentDeleteCmd, commentLikeCmd, commentUnlikeCmd)
}
