// Package main implements the rotation tracker commands.
// This file handles adding shoes to the rotation, logging runs, and showing
// wear progress toward the replacement discount.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"secondsole/internal/rotation"
)

var (
	rotationShoeID string
	rotationCustom string
	rotationMiles  float64
)

var rotationCmd = &cobra.Command{
	Use:   "rotation",
	Short: "Track the shoes in your rotation",
	Long: `Track per-shoe mileage.

Each tracked shoe carries a mileage threshold (default 350); reaching it
unlocks the in-store replacement discount. Rotation tracking requires a local
(non-guest) profile.`,
	RunE: runRotationList,
}

var rotationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Start tracking a shoe",
	Long: `Start tracking a shoe, either a catalog model (--shoe) or a custom
entry (--name) for shoes we do not stock.`,
	RunE: runRotationAdd,
}

var rotationLogCmd = &cobra.Command{
	Use:   "log <instance-id>",
	Short: "Log a run on a tracked shoe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRotationLog,
}

var rotationRemoveCmd = &cobra.Command{
	Use:   "remove <instance-id>",
	Short: "Retire a tracked shoe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRotationRemove,
}

var rotationListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the rotation",
	RunE:  runRotationList,
}

func runRotationAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if rotationShoeID == "" && rotationCustom == "" {
		return fmt.Errorf("pass --shoe <catalog-id> or --name <custom name>")
	}

	if rotationShoeID != "" {
		shoe, ok := a.catalog.Lookup(rotationShoeID)
		if !ok {
			return fmt.Errorf("unknown shoe id %q; see 'sole shop'", rotationShoeID)
		}
		item, ok := a.tracker.AddCatalogShoe(shoe)
		if !ok {
			return fmt.Errorf("rotation tracking requires a local profile; run 'sole auth login' first")
		}
		fmt.Printf("✅ Tracking %s (instance %s)\n", item.Name, item.ID)
		return nil
	}

	item, ok := a.tracker.AddCustomShoe(rotationCustom)
	if !ok {
		return fmt.Errorf("rotation tracking requires a local profile; run 'sole auth login' first")
	}
	fmt.Printf("✅ Tracking %s (instance %s)\n", item.Name, item.ID)
	return nil
}

func runRotationLog(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.tracker.LogMiles(args[0], rotationMiles) {
		return fmt.Errorf("nothing logged: miles must be positive and the instance id must exist")
	}
	fmt.Printf("✅ Logged %.1f miles.\n", rotationMiles)

	for _, item := range a.tracker.Shoes() {
		if item.ID == args[0] && rotation.DiscountUnlocked(item) {
			fmt.Println("🎉 Discount unlocked! Show this in store.")
		}
	}
	return nil
}

func runRotationRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.tracker.RemoveShoe(args[0])
	fmt.Println("✅ Shoe retired. Lifetime miles stay on your profile.")
	return nil
}

func runRotationList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	shoes := a.tracker.Shoes()
	if len(shoes) == 0 {
		fmt.Println("No shoes in rotation. Add one with 'sole rotation add'.")
		return nil
	}

	fmt.Println(strings.Repeat("─", 64))
	for _, item := range shoes {
		progress := rotation.Progress(item)
		bar := renderBar(progress, 20)
		status := ""
		if rotation.DiscountUnlocked(item) {
			status = "  🎉 discount unlocked"
		}
		fmt.Printf("  %-24s %s %5.0f/%.0f mi%s\n", item.Name, bar, item.Miles, item.Threshold, status)
		fmt.Printf("    instance: %s\n", item.ID)
	}
	fmt.Println(strings.Repeat("─", 64))
	fmt.Printf("Lifetime miles: %.1f\n", a.repo.Profile().MilesRun)
	return nil
}

func renderBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	rotationAddCmd.Flags().StringVar(&rotationShoeID, "shoe", "", "catalog shoe id")
	rotationAddCmd.Flags().StringVar(&rotationCustom, "name", "", "custom shoe name")
	rotationLogCmd.Flags().Float64Var(&rotationMiles, "miles", 0, "miles to log (must be positive)")

	rotationCmd.AddCommand(rotationAddCmd, rotationLogCmd, rotationRemoveCmd, rotationListCmd)
	rootCmd.AddCommand(rotationCmd)
}
