package main

import (
	"errors"
	"fmt"

	"murmur/internal/api"

	"github.com/spf13/cobra"
)

var profileUpdateCmd = &cobra.Command{
	Use:   "profile-update",
	Short: "Update your profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		bio, _ := cmd.Flags().GetString("bio")
		if name == "" && bio == "" {
			return errors.New("nothing to update; pass --name or --bio")
		}

		appStore.UpdateProfile(cmd.Context(), api.UpdateProfileInput{Name: name, Bio: bio})
		drainAlert()

		st := appStore.State().User
		if st.HasError || st.Profile == nil {
			return errors.New("profile update failed")
		}
		fmt.Printf("Updated profile for @%s\n", st.Profile.Username)
		return nil
	},
}

var accountDeleteCmd = &cobra.Command{
	Use:   "account-delete",
	Short: "Delete your account permanently",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return errors.New("pass --yes to confirm account deletion")
		}

		appStore.DeleteProfile(cmd.Context())
		drainAlert()

		if appStore.State().User.HasError {
			return errors.New("account deletion failed")
		}
		fmt.Println("Account deleted")
		return nil
	},
}

var followingCmd = &cobra.Command{
	Use:   "following",
	Short: "List the ids of users you follow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appStore.GetAllFollowing(cmd.Context())
		st := appStore.State().User
		if st.HasError {
			return errors.New("failed to fetch following")
		}
		for _, id := range st.Following.IDs() {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().String("name", "", "display name")
	profileUpdateCmd.Flags().String("bio", "", "profile bio")
	accountDeleteCmd.Flags().Bool("yes", false, "confirm deletion")
	rootCmd.AddCommand(profileUpdateCmd, accountDeleteCmd, followingCmd)
}
