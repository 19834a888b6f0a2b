package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondsole/internal/profile"
	"secondsole/internal/store"
	"secondsole/internal/types"
)

func newTestTracker() (*Tracker, *profile.Repository) {
	repo := profile.NewRepository(store.New(store.NewMemoryKV(), "", nil))
	return NewTracker(repo), repo
}

func TestAddCatalogShoe(t *testing.T) {
	tracker, _ := newTestTracker()

	item, ok := tracker.AddCatalogShoe(types.Shoe{ID: "hoka-clifton-9", Name: "Clifton 9"})
	require.True(t, ok)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "hoka-clifton-9", item.ShoeID)
	assert.Zero(t, item.Miles)
	assert.EqualValues(t, DefaultThreshold, item.Threshold)

	// Each add is a distinct instance, even for the same catalog shoe.
	item2, ok := tracker.AddCatalogShoe(types.Shoe{ID: "hoka-clifton-9", Name: "Clifton 9"})
	require.True(t, ok)
	assert.NotEqual(t, item.ID, item2.ID)
	assert.Len(t, tracker.Shoes(), 2)
}

func TestAddCustomShoe(t *testing.T) {
	tracker, _ := newTestTracker()

	item, ok := tracker.AddCustomShoe("Beat-up Pegasus")
	require.True(t, ok)
	assert.Equal(t, types.RotationRefCustom, item.ShoeID)

	_, ok = tracker.AddCustomShoe("")
	assert.False(t, ok, "empty custom name must be rejected")
	assert.Len(t, tracker.Shoes(), 1)
}

func TestGuestsCannotTrack(t *testing.T) {
	tracker, repo := newTestTracker()
	guest := true
	repo.UpdateProfile(profile.ProfilePatch{IsGuest: &guest})

	_, ok := tracker.AddCustomShoe("Sneaky Shoe")
	assert.False(t, ok)
	assert.Empty(t, tracker.Shoes())
}

func TestLogMilesAccumulatesBothTotals(t *testing.T) {
	tracker, repo := newTestTracker()
	item, _ := tracker.AddCustomShoe("Daily Trainer")

	require.True(t, tracker.LogMiles(item.ID, 5.5))
	require.True(t, tracker.LogMiles(item.ID, 4.5))

	shoes := tracker.Shoes()
	require.Len(t, shoes, 1)
	assert.InDelta(t, 10.0, shoes[0].Miles, 1e-9)
	assert.InDelta(t, 10.0, repo.Profile().MilesRun, 1e-9)
}

func TestLogMilesRejectsNonPositiveDeltas(t *testing.T) {
	tracker, repo := newTestTracker()
	item, _ := tracker.AddCustomShoe("Daily Trainer")
	tracker.LogMiles(item.ID, 10)

	assert.False(t, tracker.LogMiles(item.ID, 0))
	assert.False(t, tracker.LogMiles(item.ID, -5))

	assert.InDelta(t, 10.0, tracker.Shoes()[0].Miles, 1e-9, "miles must be unchanged")
	assert.InDelta(t, 10.0, repo.Profile().MilesRun, 1e-9, "milesRun must be unchanged")
}

func TestLogMilesUnknownInstanceIsNoOp(t *testing.T) {
	tracker, repo := newTestTracker()
	tracker.AddCustomShoe("Daily Trainer")

	assert.False(t, tracker.LogMiles("nope", 5))
	assert.Zero(t, repo.Profile().MilesRun)
}

func TestRemoveShoeKeepsHistoricalMiles(t *testing.T) {
	tracker, repo := newTestTracker()
	item, _ := tracker.AddCustomShoe("Daily Trainer")
	tracker.LogMiles(item.ID, 120)

	tracker.RemoveShoe(item.ID)
	assert.Empty(t, tracker.Shoes())
	assert.InDelta(t, 120.0, repo.Profile().MilesRun, 1e-9, "removal must not retract mileage")
}

func TestProgressAndDiscount(t *testing.T) {
	item := types.ShoeRotationItem{Miles: 175, Threshold: 350}
	assert.InDelta(t, 0.5, Progress(item), 1e-9)
	assert.False(t, DiscountUnlocked(item))

	item.Miles = 350
	assert.InDelta(t, 1.0, Progress(item), 1e-9)
	assert.True(t, DiscountUnlocked(item))

	// Past the threshold the progress clamps; the discount stays unlocked.
	item.Miles = 900
	assert.InDelta(t, 1.0, Progress(item), 1e-9)
	assert.True(t, DiscountUnlocked(item))
}
