package main

import (
	"errors"
	"fmt"

	"murmur/internal/api"
	"murmur/internal/models"

	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed [latest|top]",
	Short: "Show the home feed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feed := api.FeedLatest
		if len(args) == 1 {
			feed = args[0]
		}
		pages, _ := cmd.Flags().GetInt("pages")

		// Each completed page plays the sentinel-visible role for the next:
		// fetch, and continue only while the server reports more.
		page := 1
		for {
			appStore.GetHomeFeed(cmd.Context(), feed, page)
			st := appStore.State().Posts
			if st.HasError {
				drainAlert()
				return fmt.Errorf("failed to fetch %s feed (page %d)", feed, page)
			}
			if !st.HasNext || page >= pages {
				break
			}
			page++
		}

		st := appStore.State()
		for _, post := range st.Posts.Posts {
			printPost(post, st.User.Likes)
		}
		if st.Posts.HasNext {
			fmt.Println("... more available, rerun with --pages")
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show one post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		pages, _ := cmd.Flags().GetInt("pages")

		appStore.GetPost(cmd.Context(), id)
		st := appStore.State()
		if st.Posts.HasError || st.Posts.Post == nil {
			return errors.New("failed to fetch post")
		}
		printPost(*st.Posts.Post, st.User.Likes)

		page := 1
		for {
			appStore.GetPostComments(cmd.Context(), id, page)
			cs := appStore.State().Comments
			if cs.HasError {
				return fmt.Errorf("failed to fetch comments (page %d)", page)
			}
			if !cs.HasNext || page >= pages {
				break
			}
			page++
		}

		for _, comment := range appStore.State().Comments.Comments {
			printComment(comment, 1)
		}
		return nil
	},
}

func printPost(post models.Post, likes models.Refs) {
	marker := " "
	if likes.Contains(post.ID) {
		marker = "*"
	}
	fmt.Printf("#%d %s @%s  %s\n", post.ID, marker, post.Author.Username,
		post.CreatedOn.Format("2006-01-02 15:04"))
	fmt.Println(post.Body)
	fmt.Printf("  %d likes, %d comments\n\n", len(post.Likes), len(post.Comments))
}

func printComment(comment models.Comment, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	fmt.Printf("#%d @%s: %s (%d likes)\n", comment.ID, comment.Author.Username,
		comment.Body, len(comment.Likes))
	for _, reply := range comment.Replies {
		printComment(reply, depth+1)
	}
}

func init() {
	feedCmd.Flags().Int("pages", 1, "number of pages to fetch")
	showCmd.Flags().Int("pages", 1, "number of comment pages to fetch")
	rootCmd.AddCommand(feedCmd, showCmd)
}
