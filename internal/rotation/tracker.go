// Package rotation tracks per-shoe mileage and the discount threshold for the
// shoes a runner keeps in rotation.
package rotation

import (
	"github.com/google/uuid"

	"secondsole/internal/profile"
	"secondsole/internal/types"
)

// DefaultThreshold is the mileage limit a new rotation shoe starts with.
// Reaching it unlocks the in-store replacement discount.
const DefaultThreshold = 350

// Tracker manages the shoe rotation. It requires a non-guest profile: for
// guests every mutation is a silent no-op.
type Tracker struct {
	repo *profile.Repository
}

// NewTracker wraps the repository.
func NewTracker(repo *profile.Repository) *Tracker {
	return &Tracker{repo: repo}
}

// AddCatalogShoe starts tracking a catalog shoe. Returns the created item and
// whether anything was added.
func (t *Tracker) AddCatalogShoe(shoe types.Shoe) (types.ShoeRotationItem, bool) {
	return t.add(types.ShoeRotationItem{
		ShoeID: shoe.ID,
		Name:   shoe.Name,
		Image:  shoe.Image,
	})
}

// AddCustomShoe starts tracking a shoe that is not in the catalog. An empty
// name is rejected.
func (t *Tracker) AddCustomShoe(name string) (types.ShoeRotationItem, bool) {
	if name == "" {
		return types.ShoeRotationItem{}, false
	}
	return t.add(types.ShoeRotationItem{
		ShoeID: types.RotationRefCustom,
		Name:   name,
	})
}

func (t *Tracker) add(item types.ShoeRotationItem) (types.ShoeRotationItem, bool) {
	if t.repo.Profile().IsGuest {
		return types.ShoeRotationItem{}, false
	}
	item.ID = uuid.NewString()
	item.Miles = 0
	item.Threshold = DefaultThreshold
	t.repo.AddToRotation(item)
	return item, true
}

// LogMiles adds a run to the given shoe. The delta accumulates into both the
// shoe's miles and the profile's running total in a single write. A zero or
// negative delta is meaningless and mutates nothing; so does an unknown
// instance id.
func (t *Tracker) LogMiles(instanceID string, delta float64) bool {
	if delta <= 0 {
		return false
	}
	logged := false
	t.repo.Mutate(func(s *types.Schema) {
		if s.Profile.IsGuest {
			return
		}
		for i := range s.Rotation {
			if s.Rotation[i].ID == instanceID {
				s.Rotation[i].Miles += delta
				s.Profile.MilesRun += delta
				logged = true
				return
			}
		}
	})
	return logged
}

// RemoveShoe retires the instance. Historical mileage stays on the profile
// total; only the shoe itself goes.
func (t *Tracker) RemoveShoe(instanceID string) {
	t.repo.RemoveFromRotation(instanceID)
}

// Shoes returns the current rotation.
func (t *Tracker) Shoes() []types.ShoeRotationItem {
	return t.repo.Rotation()
}

// Progress reports how far through its life the shoe is, clamped to [0, 1].
// It is derived fresh on every call and never cached on the entity.
func Progress(item types.ShoeRotationItem) float64 {
	if item.Threshold <= 0 {
		return 1
	}
	p := item.Miles / item.Threshold
	if p > 1 {
		return 1
	}
	return p
}

// DiscountUnlocked is the terminal condition: the shoe has reached or passed
// its threshold.
func DiscountUnlocked(item types.ShoeRotationItem) bool {
	return Progress(item) >= 1
}
