package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <body>...",
	Short: "Create a post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appStore.AddPost(cmd.Context(), strings.Join(args, " "))
		drainAlert()
		st := appStore.State().Posts
		if st.HasError {
			return errors.New("post failed")
		}
		fmt.Printf("Posted #%d\n", st.Posts[0].ID)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <post-id> <body>...",
	Short: "Edit a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		appStore.EditPost(cmd.Context(), id, strings.Join(args[1:], " "))
		drainAlert()
		if appStore.State().Posts.HasError {
			return errors.New("edit failed")
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		appStore.DeletePost(cmd.Context(), id)
		drainAlert()
		if appStore.State().Posts.HasError {
			return errors.New("delete failed")
		}
		fmt.Printf("Deleted #%d\n", id)
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		appStore.LikePost(cmd.Context(), id)
		drainAlert()
		if appStore.State().Posts.HasError {
			return errors.New("like failed")
		}
		return nil
	},
}

var unlikeCmd = &cobra.Command{
	Use:   "unlike <post-id>",
	Short: "Remove a like from a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		appStore.UnlikePost(cmd.Context(), id)
		drainAlert()
		if appStore.State().Posts.HasError {
			return errors.New("unlike failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postCmd, editCmd, deleteCmd, likeCmd, unlikeCmd)
}
