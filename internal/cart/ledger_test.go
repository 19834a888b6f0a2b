package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondsole/internal/profile"
	"secondsole/internal/store"
	"secondsole/internal/types"
)

type fakeCatalog map[string]types.Shoe

func (f fakeCatalog) Lookup(id string) (types.Shoe, bool) {
	shoe, ok := f[id]
	return shoe, ok
}

func newTestLedger() *Ledger {
	return NewLedger(profile.NewRepository(store.New(store.NewMemoryKV(), "", nil)))
}

func TestAddItemMergesSameKey(t *testing.T) {
	l := newTestLedger()

	require.True(t, l.AddItem("x", 9, 1))
	require.True(t, l.AddItem("x", 9, 1))

	items := l.Items()
	require.Len(t, items, 1, "same (shoe, size) must merge into one line")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemDifferentSizeIsNewLine(t *testing.T) {
	l := newTestLedger()

	l.AddItem("x", 9, 1)
	l.AddItem("x", 10, 1)

	assert.Len(t, l.Items(), 2)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	l := newTestLedger()

	assert.False(t, l.AddItem("x", 9, 0))
	assert.False(t, l.AddItem("x", 9, -3))
	assert.Empty(t, l.Items())
}

func TestRemoveItemExactKey(t *testing.T) {
	l := newTestLedger()
	l.AddItem("x", 9, 1)

	// Size mismatch: no-op.
	l.RemoveItem("x", 10)
	assert.Len(t, l.Items(), 1)

	// Exact key: whole line goes, even with quantity > 1.
	l.AddItem("x", 9, 2)
	l.RemoveItem("x", 9)
	assert.Empty(t, l.Items())
}

func TestClear(t *testing.T) {
	l := newTestLedger()
	l.AddItem("x", 9, 1)
	l.AddItem("y", 8, 2)

	l.Clear()
	assert.Empty(t, l.Items())
	assert.Zero(t, l.Count())
}

func TestCountSumsQuantities(t *testing.T) {
	l := newTestLedger()
	l.AddItem("x", 9, 2)
	l.AddItem("y", 8, 1)
	assert.Equal(t, 3, l.Count())
}

func TestSubtotal(t *testing.T) {
	l := newTestLedger()
	catalog := fakeCatalog{
		"x": {ID: "x", Price: 130},
		"y": {ID: "y", Price: 160},
	}

	l.AddItem("x", 9, 2)
	l.AddItem("y", 8, 1)
	assert.InDelta(t, 420.0, l.Subtotal(catalog), 1e-9)

	// A line whose shoe was retired from the catalog contributes zero.
	l.AddItem("retired-id", 9, 5)
	assert.InDelta(t, 420.0, l.Subtotal(catalog), 1e-9)
}

func TestSubscribeNotifiesOnEveryMutation(t *testing.T) {
	l := newTestLedger()

	var counts []int
	cancel := l.Subscribe(func(count int) { counts = append(counts, count) })

	l.AddItem("x", 9, 1)   // count 1
	l.AddItem("x", 9, 2)   // count 3
	l.RemoveItem("x", 9)   // count 0
	l.AddItem("y", 8, 1)   // count 1
	l.Clear()              // count 0
	l.AddItem("x", 9, 0)   // rejected: no notification
	assert.Equal(t, []int{1, 3, 0, 1, 0}, counts)

	cancel()
	l.AddItem("x", 9, 1)
	assert.Len(t, counts, 5, "cancelled subscriber must not be notified")
}
