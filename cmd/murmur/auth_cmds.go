package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"murmur/internal/api"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <identity>",
	Short: "Authenticate with a username or email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd)
		if err != nil {
			return err
		}

		appStore.Login(cmd.Context(), args[0], password)
		drainAlert()

		st := appStore.State()
		if !st.Auth.IsAuthenticated {
			return errors.New("login failed")
		}
		fmt.Printf("Signed in as %s\n", st.Auth.User.Username)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <username> <email>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = args[0]
		}
		password, err := readPassword(cmd)
		if err != nil {
			return err
		}

		appStore.Signup(cmd.Context(), api.RegisterInput{
			Name:     name,
			Username: args[0],
			Email:    args[1],
			Password: password,
		})
		drainAlert()

		st := appStore.State()
		if !st.Auth.IsAuthenticated {
			return errors.New("signup failed")
		}
		fmt.Printf("Welcome, %s\n", st.Auth.User.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appStore.Logout(cmd.Context())
		fmt.Println("Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appStore.GetAuthUser(cmd.Context())
		st := appStore.State()
		if !st.Auth.IsAuthenticated {
			return errors.New("not signed in")
		}
		u := st.Auth.User
		fmt.Printf("%s <%s> (id %d)\n", u.Username, u.Email, u.ID)
		fmt.Printf("followers: %d  following: %d\n", len(u.Followers), len(u.Followed))
		return nil
	},
}

func readPassword(cmd *cobra.Command) (string, error) {
	if pw, _ := cmd.Flags().GetString("password"); pw != "" {
		return pw, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	loginCmd.Flags().String("password", "", "password (prompted when omitted)")
	signupCmd.Flags().String("password", "", "password (prompted when omitted)")
	signupCmd.Flags().String("name", "", "display name (defaults to the username)")
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}
