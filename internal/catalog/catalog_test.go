package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"secondsole/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSeededIDsAreUnique(t *testing.T) {
	cat := Seeded()
	seen := make(map[string]bool)
	for _, shoe := range cat.Shoes() {
		if seen[shoe.ID] {
			t.Errorf("Duplicate catalog id %q", shoe.ID)
		}
		seen[shoe.ID] = true
	}
	if cat.Len() == 0 {
		t.Fatal("Seeded catalog is empty")
	}
}

func TestSeededEntriesAreWellFormed(t *testing.T) {
	for _, shoe := range Seeded().Shoes() {
		if shoe.Price <= 0 {
			t.Errorf("%s: non-positive price %v", shoe.ID, shoe.Price)
		}
		if shoe.Drop < 0 {
			t.Errorf("%s: negative drop %v", shoe.ID, shoe.Drop)
		}
		switch shoe.Category {
		case types.CategoryRoad, types.CategoryTrail, types.CategoryTrack, types.CategoryHybrid:
		default:
			t.Errorf("%s: unknown category %q", shoe.ID, shoe.Category)
		}
		switch shoe.Gender {
		case types.GenderMen, types.GenderWomen, types.GenderUnisex:
		default:
			t.Errorf("%s: unknown gender %q", shoe.ID, shoe.Gender)
		}
	}
}

func TestLookup(t *testing.T) {
	cat := Seeded()
	shoe, ok := cat.Lookup("hoka-clifton-9")
	if !ok || shoe.Brand != "Hoka" {
		t.Errorf("Lookup(hoka-clifton-9) = (%+v, %v)", shoe, ok)
	}
	if _, ok := cat.Lookup("retired-id"); ok {
		t.Error("Lookup of unknown id reported ok")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.json")
	raw, _ := json.Marshal(Seeded().Shoes()[:3])
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("Expected 3 shoes, got %d", cat.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load of missing file did not error")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stock.json")
	write := func(shoes []types.Shoe) {
		raw, _ := json.Marshal(shoes)
		if err := os.WriteFile(path, raw, 0644); err != nil {
			t.Fatalf("Failed to write fixture: %v", err)
		}
	}
	write(Seeded().Shoes()[:2])

	reloaded := make(chan *Catalog, 4)
	w, err := WatchFile(path, nil, func(c *Catalog) { reloaded <- c })
	if err != nil {
		t.Fatalf("WatchFile failed: %v", err)
	}
	defer w.Close()

	write(Seeded().Shoes()[:5])

	select {
	case cat := <-reloaded:
		if cat.Len() != 5 {
			t.Errorf("Reloaded catalog has %d shoes, want 5", cat.Len())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watcher did not reload within 5s")
	}
}
