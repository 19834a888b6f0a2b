package types

import "encoding/json"

// InjuryTag is one entry in the multi-choice injury history question.
type InjuryTag string

const (
	InjuryNone     InjuryTag = "None"
	InjuryShin     InjuryTag = "Shin"
	InjuryPlantar  InjuryTag = "Plantar"
	InjuryKnee     InjuryTag = "Knee"
	InjuryAchilles InjuryTag = "Achilles"
	InjuryHip      InjuryTag = "Hip"
	InjuryITBand   InjuryTag = "ITBand"
	InjuryBack     InjuryTag = "Back"
)

// InjurySet is the injury history answer. The "None" sentinel is mutually
// exclusive with every other tag; Normalize enforces that, and unmarshaling
// normalizes, so the illegal {None, X} state never survives a boundary.
type InjurySet []InjuryTag

// Normalize deduplicates the set and resolves the "None" sentinel: if any
// concrete tag is present, None is dropped (the concrete tags carry the
// information); a set of only None stays [None].
func (s InjurySet) Normalize() InjurySet {
	if len(s) == 0 {
		return nil
	}
	seen := make(map[InjuryTag]bool, len(s))
	out := make(InjurySet, 0, len(s))
	hasConcrete := false
	for _, tag := range s {
		if tag != InjuryNone {
			hasConcrete = true
		}
	}
	for _, tag := range s {
		if seen[tag] {
			continue
		}
		if tag == InjuryNone && hasConcrete {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// Has reports whether the tag is in the set.
func (s InjurySet) Has(tag InjuryTag) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

// UnmarshalJSON normalizes on the way in so stored records written by older
// versions cannot resurrect the None-plus-tags state.
func (s *InjurySet) UnmarshalJSON(data []byte) error {
	var raw []InjuryTag
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = InjurySet(raw).Normalize()
	return nil
}
