// Package main implements the gait profile commands.
// This file handles recording and showing the deep gait analysis answers.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"secondsole/internal/profile"
	"secondsole/internal/types"
)

var gaitCmd = &cobra.Command{
	Use:   "gait",
	Short: "Manage your gait profile",
	Long: `Record and inspect your gait analysis answers.

Answers feed the shop's match mode. Every question is optional; unanswered
questions simply contribute nothing to matching. Gait analysis requires a
local (non-guest) profile.`,
}

var (
	gaitTerrain    string
	gaitGender     string
	gaitExperience string
	gaitStrike     string
	gaitArch       string
	gaitPronation  string
	gaitWeekly     string
	gaitGoals      string
	gaitCushion    string
	gaitDrop       string
	gaitFootShape  string
	gaitInjuries   []string
)

var gaitSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record gait answers",
	Long: `Record one or more gait answers. Only the flags you pass change;
--injury replaces the full injury list ("None" clears it).`,
	RunE: runGaitSet,
}

var gaitShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored gait profile",
	RunE:  runGaitShow,
}

// buildGaitPatch translates the changed flags into a repository patch.
func buildGaitPatch(changed func(string) bool) profile.GaitPatch {
	patch := profile.GaitPatch{}
	if changed("terrain") {
		v := types.Terrain(gaitTerrain)
		patch.Terrain = &v
	}
	if changed("gender") {
		v := types.Gender(gaitGender)
		patch.Gender = &v
	}
	if changed("experience") {
		v := types.ExperienceLevel(gaitExperience)
		patch.ExperienceLevel = &v
	}
	if changed("strike") {
		v := types.Strike(gaitStrike)
		patch.Strike = &v
	}
	if changed("arch") {
		v := types.Arch(gaitArch)
		patch.Arch = &v
	}
	if changed("pronation") {
		v := types.Pronation(gaitPronation)
		patch.Pronation = &v
	}
	if changed("weekly-miles") {
		v := types.WeeklyMiles(gaitWeekly)
		patch.WeeklyMiles = &v
	}
	if changed("goals") {
		v := types.DistanceGoals(gaitGoals)
		patch.DistanceGoals = &v
	}
	if changed("cushion") {
		v := types.Cushion(gaitCushion)
		patch.CushionPref = &v
	}
	if changed("drop") {
		v := types.DropPref(gaitDrop)
		patch.DropPref = &v
	}
	if changed("foot-shape") {
		v := types.FootShape(gaitFootShape)
		patch.FootShape = &v
	}
	if changed("injury") {
		set := make(types.InjurySet, 0, len(gaitInjuries))
		for _, tag := range gaitInjuries {
			set = append(set, types.InjuryTag(tag))
		}
		patch.InjuryHistory = set
	}
	return patch
}

func runGaitSet(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.repo.Profile().IsGuest {
		return fmt.Errorf("gait analysis requires a local profile; run 'sole auth login' first")
	}

	a.repo.UpdateGaitProfile(buildGaitPatch(cmd.Flags().Changed))
	fmt.Println("✅ Gait profile updated.")
	printGait(a.repo.GaitProfile())
	return nil
}

func runGaitShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	printGait(a.repo.GaitProfile())
	return nil
}

func printGait(g types.GaitProfile) {
	show := func(label string, v string) {
		if v == "" {
			v = "—"
		}
		fmt.Printf("  %-14s %s\n", label, v)
	}
	show("Terrain", string(g.Terrain))
	show("Gender", string(g.Gender))
	show("Experience", string(g.ExperienceLevel))
	show("Strike", string(g.Strike))
	show("Arch", string(g.Arch))
	show("Pronation", string(g.Pronation))
	show("Weekly miles", string(g.WeeklyMiles))
	show("Goals", string(g.DistanceGoals))
	show("Cushion", string(g.CushionPref))
	show("Drop", string(g.DropPref))
	show("Foot shape", string(g.FootShape))
	if len(g.InjuryHistory) == 0 {
		show("Injuries", "")
		return
	}
	tags := make([]string, len(g.InjuryHistory))
	for i, t := range g.InjuryHistory {
		tags[i] = string(t)
	}
	fmt.Printf("  %-14s %v\n", "Injuries", tags)
}

func init() {
	f := gaitSetCmd.Flags()
	f.StringVar(&gaitTerrain, "terrain", "", "Road, Trail, Hybrid")
	f.StringVar(&gaitGender, "gender", "", "Men, Women, Unisex")
	f.StringVar(&gaitExperience, "experience", "", "Beginner, Casual, Advanced, Elite")
	f.StringVar(&gaitStrike, "strike", "", "Heel, Midfoot, Forefoot")
	f.StringVar(&gaitArch, "arch", "", "Low, Medium, High")
	f.StringVar(&gaitPronation, "pronation", "", "Neutral, Over, Under")
	f.StringVar(&gaitWeekly, "weekly-miles", "", "Low, Medium, High")
	f.StringVar(&gaitGoals, "goals", "", "Speed, Daily, Long, Ultra")
	f.StringVar(&gaitCushion, "cushion", "", "Firm, Balanced, Plush")
	f.StringVar(&gaitDrop, "drop", "", "Zero, Low, Medium, High")
	f.StringVar(&gaitFootShape, "foot-shape", "", "Standard, Wide")
	f.StringSliceVar(&gaitInjuries, "injury", nil, "None, Shin, Plantar, Knee, Achilles, Hip, ITBand, Back (repeatable)")

	gaitCmd.AddCommand(gaitSetCmd, gaitShowCmd)
	rootCmd.AddCommand(gaitCmd)
}
