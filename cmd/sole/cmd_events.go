// Package main implements the community commands: group runs, trails,
// and the shop contact intents.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"secondsole/internal/community"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Group runs and community events",
	RunE:  runEventsList,
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming group runs",
	RunE:  runEventsList,
}

var eventsRSVPCmd = &cobra.Command{
	Use:   "rsvp <event-id>",
	Short: "RSVP to a group run",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsRSVP,
}

var eventsUnRSVPCmd = &cobra.Command{
	Use:   "unrsvp <event-id>",
	Short: "Withdraw an RSVP",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsUnRSVP,
}

var trailsCmd = &cobra.Command{
	Use:   "trails",
	Short: "Nearby running routes",
	RunE:  runTrails,
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Shop phone and directions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("  %-12s %s\n", "Phone", community.DialIntent(community.StorePhone))
		fmt.Printf("  %-12s %s\n", "Directions", community.DirectionsIntent(community.StoreAddress))
	},
}

func runEventsList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("🏃 Upcoming Group Runs")
	fmt.Println(strings.Repeat("─", 52))
	for _, ev := range community.Events() {
		mark := " "
		if a.repo.HasRSVP(ev.ID) {
			mark = "✓"
		}
		fmt.Printf(" %s %-20s %s %s @ %s  [%s]\n", mark, ev.ID, ev.Day, ev.Time, ev.Location, ev.Type)
		fmt.Printf("   %s\n", ev.Title)
	}
	return nil
}

func runEventsRSVP(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ev, ok := community.EventByID(args[0])
	if !ok {
		return fmt.Errorf("unknown event %q; run 'sole events list'", args[0])
	}
	if a.repo.HasRSVP(ev.ID) {
		fmt.Printf("Already going to %s.\n", ev.Title)
		return nil
	}
	a.repo.RSVPEvent(ev.ID)
	fmt.Printf("✅ See you at %s (%s %s).\n", ev.Title, ev.Day, ev.Time)
	return nil
}

func runEventsUnRSVP(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.repo.HasRSVP(args[0]) {
		fmt.Println("No RSVP on file for that event.")
		return nil
	}
	a.repo.RemoveRSVP(args[0])
	fmt.Println("✅ RSVP withdrawn.")
	return nil
}

func runTrails(cmd *cobra.Command, args []string) error {
	fmt.Println("🌲 Nearby Trails")
	fmt.Println(strings.Repeat("─", 52))
	for _, tr := range community.Trails() {
		fmt.Printf("  %-26s %-8s %s\n", tr.Name, tr.Type, tr.Distance)
	}
	return nil
}

func init() {
	eventsCmd.AddCommand(eventsListCmd, eventsRSVPCmd, eventsUnRSVPCmd)
	rootCmd.AddCommand(eventsCmd, trailsCmd, contactCmd)
}
