// Package shop composes the catalog filter pipeline. Every facet is an
// independent pure predicate; enabling match mode narrows the set alongside
// the manual facets rather than replacing them.
package shop

import (
	"sort"
	"sync"

	"secondsole/internal/catalog"
	"secondsole/internal/match"
	"secondsole/internal/profile"
	"secondsole/internal/types"
)

// Filter is the current facet selection. Zero values mean "All"; an empty
// brand set passes every brand. All facets compose with each other and with
// MatchMode.
type Filter struct {
	MatchMode bool
	Category  types.Category
	Gender    types.Gender
	Brands    []string
	Support   types.Support
	Cushion   types.Cushion
}

// Engine filters the catalog against a facet selection and, in match mode,
// the stored gait profile.
type Engine struct {
	repo *profile.Repository

	mu  sync.RWMutex
	cat *catalog.Catalog
}

// NewEngine builds an engine over the repository and catalog.
func NewEngine(repo *profile.Repository, cat *catalog.Catalog) *Engine {
	return &Engine{repo: repo, cat: cat}
}

// SetCatalog swaps the active catalog, used when a file-backed catalog
// reloads.
func (e *Engine) SetCatalog(cat *catalog.Catalog) {
	e.mu.Lock()
	e.cat = cat
	e.mu.Unlock()
}

// Apply runs the pipeline and returns the matching subset. With match mode
// active the admitted shoes are ordered by descending match score; equal
// scores keep their relative catalog order. Without match mode the catalog
// order is preserved. Match mode is skipped for guest profiles, which have
// no gait data to match against.
func (e *Engine) Apply(f Filter) []types.Shoe {
	e.mu.RLock()
	cat := e.cat
	e.mu.RUnlock()

	shoes := cat.Shoes()
	out := make([]types.Shoe, 0, len(shoes))

	if f.MatchMode && !e.repo.Profile().IsGuest {
		gait := e.repo.GaitProfile()
		scores := make(map[string]int, len(shoes))
		for _, shoe := range shoes {
			score, eligible := match.Score(shoe, gait)
			if eligible && score >= match.Threshold {
				out = append(out, shoe)
				scores[shoe.ID] = score
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return scores[out[i].ID] > scores[out[j].ID]
		})
	} else {
		out = append(out, shoes...)
	}

	out = keep(out, func(s types.Shoe) bool {
		return f.Category == "" || s.Category == f.Category
	})
	out = keep(out, func(s types.Shoe) bool {
		return f.Gender == "" || s.Gender == f.Gender || s.Gender == types.GenderUnisex
	})
	out = keep(out, func(s types.Shoe) bool {
		if len(f.Brands) == 0 {
			return true
		}
		for _, b := range f.Brands {
			if s.Brand == b {
				return true
			}
		}
		return false
	})
	out = keep(out, func(s types.Shoe) bool {
		return f.Support == "" || s.Support == f.Support
	})
	out = keep(out, func(s types.Shoe) bool {
		return f.Cushion == "" || s.Cushion == f.Cushion
	})
	return out
}

func keep(shoes []types.Shoe, pred func(types.Shoe) bool) []types.Shoe {
	kept := shoes[:0]
	for _, s := range shoes {
		if pred(s) {
			kept = append(kept, s)
		}
	}
	return kept
}
