package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"murmur/internal/models"
	"murmur/internal/pagination"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile <username> [posts|likes|comments|following]",
	Short: "Show a profile and one of its tabs",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		tab := "posts"
		if len(args) == 2 {
			tab = args[1]
		}
		pages, _ := cmd.Flags().GetInt("pages")

		appStore.GetProfile(cmd.Context(), username)
		st := appStore.State()
		if st.User.HasError || st.User.Profile == nil {
			return fmt.Errorf("failed to fetch profile %q", username)
		}
		printProfile(*st.User.Profile)

		switch tab {
		case "posts":
			return runPostTab(cmd.Context(), username, pages, newUserPostsController())
		case "likes":
			return runPostTab(cmd.Context(), username, pages, newUserLikesController())
		case "comments":
			return runCommentTab(cmd.Context(), username, pages)
		case "following":
			return runFollowingTab(cmd.Context(), username, pages)
		default:
			return fmt.Errorf("unknown tab %q", tab)
		}
	},
}

func newUserPostsController() *pagination.Controller[models.Post] {
	return pagination.NewController(func(username string) pagination.FetchFunc[models.Post] {
		return func(ctx context.Context, page int) (pagination.Page[models.Post], error) {
			result, err := appStore.Client().UserPosts(ctx, username, page)
			if err != nil {
				return pagination.Page[models.Post]{}, err
			}
			return pagination.Page[models.Post]{Items: result.Posts, HasNext: result.HasNext}, nil
		}
	})
}

func newUserLikesController() *pagination.Controller[models.Post] {
	return pagination.NewController(func(username string) pagination.FetchFunc[models.Post] {
		return func(ctx context.Context, page int) (pagination.Page[models.Post], error) {
			result, err := appStore.Client().UserLikes(ctx, username, page)
			if err != nil {
				return pagination.Page[models.Post]{}, err
			}
			return pagination.Page[models.Post]{Items: result.Posts, HasNext: result.HasNext}, nil
		}
	})
}

func runPostTab(ctx context.Context, username string, pages int, ctl *pagination.Controller[models.Post]) error {
	ctl.Visit(username)
	ctl.Load(ctx)
	for p := 1; p < pages; p++ {
		if !ctl.SentinelVisible(ctx) {
			break
		}
	}

	st := ctl.Snapshot()
	if st.HasError {
		return errors.New("failed to fetch posts")
	}
	likes := appStore.State().User.Likes
	for _, post := range st.Items {
		printPost(post, likes)
	}
	if st.HasNext {
		fmt.Println("... more available, rerun with --pages")
	}
	return nil
}

func runCommentTab(ctx context.Context, username string, pages int) error {
	ctl := pagination.NewController(func(username string) pagination.FetchFunc[models.Comment] {
		return func(ctx context.Context, page int) (pagination.Page[models.Comment], error) {
			result, err := appStore.Client().UserComments(ctx, username, page)
			if err != nil {
				return pagination.Page[models.Comment]{}, err
			}
			return pagination.Page[models.Comment]{Items: result.Comments, HasNext: result.HasNext}, nil
		}
	})
	ctl.Visit(username)
	ctl.Load(ctx)
	for p := 1; p < pages; p++ {
		if !ctl.SentinelVisible(ctx) {
			break
		}
	}

	st := ctl.Snapshot()
	if st.HasError {
		return errors.New("failed to fetch comments")
	}
	for _, comment := range st.Items {
		printComment(comment, 0)
	}
	return nil
}

func runFollowingTab(ctx context.Context, username string, pages int) error {
	ctl := pagination.NewController(func(username string) pagination.FetchFunc[models.User] {
		return func(ctx context.Context, page int) (pagination.Page[models.User], error) {
			result, err := appStore.Client().UserFollowing(ctx, username, page)
			if err != nil {
				return pagination.Page[models.User]{}, err
			}
			return pagination.Page[models.User]{Items: result.Following, HasNext: result.HasNext}, nil
		}
	})
	ctl.Visit(username)
	ctl.Load(ctx)
	for p := 1; p < pages; p++ {
		if !ctl.SentinelVisible(ctx) {
			break
		}
	}

	st := ctl.Snapshot()
	if st.HasError {
		return errors.New("failed to fetch following")
	}
	following := appStore.State().User.Following
	for _, user := range st.Items {
		marker := " "
		if following.Contains(user.ID) {
			marker = "*"
		}
		fmt.Printf("%s @%s (id %d) %s\n", marker, user.Username, user.ID, user.Profile.Name)
	}
	return nil
}

func printProfile(user models.User) {
	fmt.Printf("@%s (%s)\n", user.Username, user.Profile.Name)
	if user.Profile.Bio != "" {
		fmt.Println(user.Profile.Bio)
	}
	fmt.Printf("followers: %d  following: %d\n\n", len(user.Followers), len(user.Followed))
}

var followCmd = &cobra.Command{
	Use:   "follow <user-id>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		appStore.Follow(cmd.Context(), id)
		drainAlert()
		st := appStore.State().User
		if st.HasError {
			return errors.New("follow failed")
		}
		fmt.Printf("Now following %d users\n", len(st.Following))
		return nil
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <user-id>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		appStore.Unfollow(cmd.Context(), id)
		drainAlert()
		st := appStore.State().User
		if st.HasError {
			return errors.New("unfollow failed")
		}
		fmt.Printf("Now following %d users\n", len(st.Following))
		return nil
	},
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

func init() {
	profileCmd.Flags().Int("pages", 1, "number of pages to fetch")
	rootCmd.AddCommand(profileCmd, followCmd, unfollowCmd)
}
