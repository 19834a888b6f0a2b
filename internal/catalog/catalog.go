// Package catalog provides the read-only product inventory. The default
// inventory is seeded at build time; a JSON file source with a change watcher
// is available for stores that maintain their stock outside the binary.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"secondsole/internal/types"
)

// Catalog is an immutable view over a set of shoes. Nothing mutates the
// backing slice after construction, so it is shared without copying.
type Catalog struct {
	shoes []types.Shoe
	byID  map[string]types.Shoe
}

// New builds a catalog over the given shoes.
func New(shoes []types.Shoe) *Catalog {
	byID := make(map[string]types.Shoe, len(shoes))
	for _, s := range shoes {
		byID[s.ID] = s
	}
	return &Catalog{shoes: shoes, byID: byID}
}

// Load reads a catalog from a JSON file containing an array of shoes.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var shoes []types.Shoe
	if err := json.Unmarshal(raw, &shoes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return New(shoes), nil
}

// Shoes returns all catalog entries in their stable catalog order. Callers
// must treat the slice as read-only.
func (c *Catalog) Shoes() []types.Shoe {
	return c.shoes
}

// Lookup resolves a catalog id.
func (c *Catalog) Lookup(id string) (types.Shoe, bool) {
	shoe, ok := c.byID[id]
	return shoe, ok
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.shoes)
}
