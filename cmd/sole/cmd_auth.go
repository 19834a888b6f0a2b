// Package main implements the auth commands. There is no remote account:
// "login" just names the local profile so personalized features unlock.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"secondsole/internal/profile"
)

var (
	authName  string
	authEmail string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the local session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create or resume a named local profile",
	RunE:  runAuthLogin,
}

var authGuestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Browse as a guest",
	Long: `Browse the catalog without a profile. Gait analysis, the rotation
tracker, and match mode stay locked until you log in.`,
	RunE: runAuthGuest,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the local session",
	RunE:  runAuthLogout,
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	if authName == "" {
		return fmt.Errorf("--name is required")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	guest := false
	patch := profile.ProfilePatch{Name: &authName, IsGuest: &guest}
	if cmd.Flags().Changed("email") {
		patch.Email = &authEmail
	}
	a.repo.UpdateProfile(patch)
	a.repo.SetAuthenticated(true)

	fmt.Printf("✅ Welcome back, %s. Everything stays on this device.\n", authName)
	return nil
}

func runAuthGuest(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	guest := true
	a.repo.UpdateProfile(profile.ProfilePatch{IsGuest: &guest})
	a.repo.SetAuthenticated(true)

	fmt.Println("👟 Browsing as a guest. Log in to unlock gait analysis and match mode.")
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.repo.SetAuthenticated(false)
	fmt.Println("👋 Logged out. Your data stays on this device.")
	return nil
}

func init() {
	authLoginCmd.Flags().StringVar(&authName, "name", "", "display name")
	authLoginCmd.Flags().StringVar(&authEmail, "email", "", "email address")

	authCmd.AddCommand(authLoginCmd, authGuestCmd, authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}
