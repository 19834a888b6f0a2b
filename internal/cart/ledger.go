// Package cart implements the cart ledger. Lines are keyed by (shoe, size);
// adding an existing key merges quantities instead of duplicating the line.
// Mutations notify subscribers so badge counters track the cart without
// polling.
package cart

import (
	"sync"

	"secondsole/internal/profile"
	"secondsole/internal/types"
)

// Resolver resolves a catalog id to its shoe. The catalog package satisfies
// this; tests supply their own.
type Resolver interface {
	Lookup(id string) (types.Shoe, bool)
}

// Ledger mutates the persisted cart through the repository.
type Ledger struct {
	repo *profile.Repository

	mu      sync.Mutex
	subs    map[int]func(count int)
	nextSub int
}

// NewLedger wraps the repository.
func NewLedger(repo *profile.Repository) *Ledger {
	return &Ledger{repo: repo, subs: make(map[int]func(int))}
}

// Items returns the current cart lines.
func (l *Ledger) Items() []types.CartItem {
	return l.repo.Cart()
}

// AddItem adds qty of the (shoeID, size) line, merging into an existing line
// when the exact key is already present. A non-positive quantity is rejected
// as a no-op.
func (l *Ledger) AddItem(shoeID string, size float64, qty int) bool {
	if qty <= 0 {
		return false
	}
	data := l.repo.Mutate(func(s *types.Schema) {
		for i := range s.Cart {
			if s.Cart[i].ShoeID == shoeID && s.Cart[i].Size == size {
				s.Cart[i].Quantity += qty
				return
			}
		}
		s.Cart = append(s.Cart, types.CartItem{ShoeID: shoeID, Size: size, Quantity: qty})
	})
	l.notify(data)
	return true
}

// RemoveItem deletes the whole line for the exact (shoeID, size) key,
// whatever its quantity. A key that is not in the cart is a no-op.
func (l *Ledger) RemoveItem(shoeID string, size float64) {
	data := l.repo.Mutate(func(s *types.Schema) {
		kept := s.Cart[:0]
		for _, item := range s.Cart {
			if !(item.ShoeID == shoeID && item.Size == size) {
				kept = append(kept, item)
			}
		}
		s.Cart = kept
	})
	l.notify(data)
}

// Clear empties the cart. Called once a checkout flow completes.
func (l *Ledger) Clear() {
	data := l.repo.Mutate(func(s *types.Schema) {
		s.Cart = []types.CartItem{}
	})
	l.notify(data)
}

// Count is the badge number: total quantity across all lines.
func (l *Ledger) Count() int {
	return countOf(l.repo.Cart())
}

// Subtotal prices the cart against the catalog. A line whose shoe no longer
// resolves contributes zero rather than failing the whole sum.
func (l *Ledger) Subtotal(catalog Resolver) float64 {
	var sum float64
	for _, item := range l.repo.Cart() {
		if shoe, ok := catalog.Lookup(item.ShoeID); ok {
			sum += shoe.Price * float64(item.Quantity)
		}
	}
	return sum
}

// Subscribe registers a badge listener, invoked synchronously with the new
// count after every mutation. The returned func cancels the subscription.
func (l *Ledger) Subscribe(fn func(count int)) (cancel func()) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

func (l *Ledger) notify(data types.Schema) {
	count := countOf(data.Cart)
	l.mu.Lock()
	fns := make([]func(int), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn(count)
	}
}

func countOf(items []types.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
