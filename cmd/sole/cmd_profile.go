// Package main implements the profile and privacy commands.
// This file handles the local profile, the data audit, and the full wipe.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"secondsole/internal/profile"
)

var (
	profileName  string
	profileEmail string
	wipeConfirm  bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your local profile",
	RunE:  runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE:  runProfileUpdate,
}

var profileAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the local privacy vault audit",
	RunE:  runProfileAudit,
}

var profileWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Permanently delete all local data",
	Long: `Permanently delete the local profile, gait answers, rotation, cart,
and RSVPs. The next command starts from a factory-fresh record.`,
	RunE: runProfileWipe,
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	p := a.repo.Profile()
	kind := "Local / Offline"
	if p.IsGuest {
		kind = "Guest"
	}
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("  %-14s %s\n", "Name", name)
	fmt.Printf("  %-14s %s\n", "Email", p.Email)
	fmt.Printf("  %-14s %s\n", "Profile type", kind)
	fmt.Printf("  %-14s %d\n", "Events", p.AttendanceCount)
	fmt.Printf("  %-14s %.1f\n", "Lifetime miles", p.MilesRun)
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	patch := profile.ProfilePatch{}
	if cmd.Flags().Changed("name") {
		patch.Name = &profileName
	}
	if cmd.Flags().Changed("email") {
		patch.Email = &profileEmail
	}
	a.repo.UpdateProfile(patch)
	fmt.Println("✅ Profile updated.")
	return nil
}

func runProfileAudit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	audit := a.repo.PrivacyAudit()
	data := a.repo.Raw()

	fmt.Println("🔒 Local Privacy Vault")
	fmt.Println(strings.Repeat("─", 44))
	fmt.Printf("  %-14s %s\n", "Storage used", audit.StorageUsed)
	fmt.Printf("  %-14s %d shoes, %d cart lines, %d events\n", "Data points",
		len(data.Rotation), len(data.Cart), data.Profile.AttendanceCount)
	fmt.Println(strings.Repeat("─", 44))
	fmt.Println("Data stays on this device. No cloud sync.")
	return nil
}

func runProfileWipe(cmd *cobra.Command, args []string) error {
	if !wipeConfirm {
		return fmt.Errorf("this permanently deletes all local data; re-run with --yes to confirm")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.repo.Wipe()
	fmt.Println("✅ All local data deleted. The next command starts fresh.")
	return nil
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "email address")
	profileWipeCmd.Flags().BoolVar(&wipeConfirm, "yes", false, "confirm the wipe")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profileAuditCmd, profileWipeCmd)
	rootCmd.AddCommand(profileCmd)
}
