// Package match scores catalog shoes against a runner's gait profile.
//
// The design is soft-scoring with a hard admission threshold: no single
// signal is required, but the summed signal must clear the bar. The weights
// and the threshold match what the shop's fitters use on the floor.
package match

import (
	"strings"

	"secondsole/internal/types"
)

// Threshold is the minimum score a shoe needs to be admitted as a match.
const Threshold = 3

// DropBucket maps a heel-to-toe drop in mm onto the preference buckets the
// quiz asks about: Zero (0), Low (1-6), Medium (7-10), High (11+).
func DropBucket(drop float64) types.DropPref {
	switch {
	case drop <= 0:
		return types.DropZero
	case drop <= 6:
		return types.DropLow
	case drop <= 10:
		return types.DropMedium
	default:
		return types.DropHigh
	}
}

// Score computes the match score for the shoe and whether the shoe is
// eligible at all. Eligible is false only when the gait profile names a
// gender and the shoe is a different gendered build (Unisex always passes);
// an ineligible shoe is excluded regardless of its score.
//
// Every signal applies only when its gait field has been answered. An
// unanswered question contributes nothing, which is different from an
// explicit neutral answer.
func Score(shoe types.Shoe, gait types.GaitProfile) (score int, eligible bool) {
	// Gender is a hard filter, not a scored signal.
	if gait.Gender != "" && shoe.Gender != gait.Gender && shoe.Gender != types.GenderUnisex {
		return 0, false
	}

	// Terrain.
	if gait.Terrain != "" {
		if string(gait.Terrain) == string(shoe.Category) {
			score += 3
		}
		if gait.Terrain == types.TerrainHybrid &&
			(shoe.Category == types.CategoryRoad || shoe.Category == types.CategoryTrail) {
			score += 1
		}
	}

	// Support. Stability need is derived from pronation and arch; with both
	// questions unanswered the signal stays silent.
	if gait.Pronation != "" || gait.Arch != "" {
		needsStability := gait.Pronation == types.PronationOver || gait.Arch == types.ArchLow
		if needsStability && shoe.Support == types.SupportStability {
			score += 2
		}
		if !needsStability && shoe.Support == types.SupportNeutral {
			score += 1
		}
	}

	// Cushion preference.
	if gait.CushionPref != "" && gait.CushionPref == shoe.Cushion {
		score += 2
	}
	if gait.WeeklyMiles == types.WeeklyMilesHigh && shoe.Cushion == types.CushionPlush {
		score += 1
	}

	// Drop preference.
	if gait.DropPref != "" && DropBucket(shoe.Drop) == gait.DropPref {
		score += 2
	}

	// Foot shape: Altra lasts and explicit wide builds fit wide feet.
	if gait.FootShape == types.FootWide && (shoe.Brand == "Altra" || isWideVariant(shoe.ID)) {
		score += 1
	}

	// Goals and experience.
	if (gait.DistanceGoals == types.GoalSpeed || gait.ExperienceLevel == types.ExperienceElite) &&
		(shoe.Cushion == types.CushionFirm || shoe.Category == types.CategoryTrack) {
		score += 1
	}
	if (gait.DistanceGoals == types.GoalLong || gait.DistanceGoals == types.GoalUltra) &&
		shoe.Cushion == types.CushionPlush {
		score += 1
	}
	if gait.DistanceGoals == types.GoalDaily && shoe.Cushion == types.CushionBalanced {
		score += 1
	}
	if gait.ExperienceLevel == types.ExperienceBeginner && shoe.Price <= 130 {
		score += 1
	}
	if (gait.ExperienceLevel == types.ExperienceElite || gait.ExperienceLevel == types.ExperienceAdvanced) &&
		shoe.IsStaffPick {
		score += 1
	}

	// Injury history. Tags apply independently; Achilles actively penalizes
	// low-drop shoes rather than merely withholding a point.
	for _, tag := range gait.InjuryHistory {
		switch tag {
		case types.InjuryShin:
			if shoe.Cushion == types.CushionPlush {
				score += 1
			}
		case types.InjuryPlantar:
			if shoe.Drop >= 8 {
				score += 1
			}
		case types.InjuryKnee:
			if shoe.Cushion != types.CushionFirm {
				score += 1
			}
		case types.InjuryAchilles:
			if shoe.Drop <= 6 {
				score -= 1
			}
		case types.InjuryHip:
			if shoe.Support == types.SupportStability {
				score += 1
			}
		case types.InjuryITBand:
			if shoe.Cushion == types.CushionPlush {
				score += 1
			}
		case types.InjuryBack:
			if shoe.Cushion == types.CushionPlush {
				score += 1
			}
		}
	}

	return score, true
}

// Qualifies reports whether the shoe is admitted for this gait profile.
func Qualifies(shoe types.Shoe, gait types.GaitProfile) bool {
	score, eligible := Score(shoe, gait)
	return eligible && score >= Threshold
}

func isWideVariant(id string) bool {
	lower := strings.ToLower(id)
	return strings.Contains(lower, "wide") || strings.Contains(lower, "4e")
}
