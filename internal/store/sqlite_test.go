package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"secondsole/internal/types"
)

func TestSQLiteKVRoundTrip(t *testing.T) {
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "sole.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite kv: %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get("k"); err != nil || ok {
		t.Fatalf("Expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	v, ok, err := kv.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("Get = (%q, %v, %v), want (v2, true, nil)", v, ok, err)
	}

	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Error("Key survived Delete")
	}
	// Deleting a missing key is not an error.
	if err := kv.Delete("k"); err != nil {
		t.Errorf("Delete of missing key errored: %v", err)
	}
}

func TestStoreOverSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sole.db")

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("Failed to open sqlite kv: %v", err)
	}
	s := New(kv, "", nil)

	data := s.Read()
	data.Profile.Name = "Dana"
	data.Cart = append(data.Cart, types.CartItem{ShoeID: "x", Size: 9, Quantity: 1})
	s.Write(data)
	want := s.Read()
	if err := kv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	kv2, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("Failed to reopen sqlite kv: %v", err)
	}
	defer kv2.Close()

	got := New(kv2, "", nil).Read()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Record changed across reopen (-want +got):\n%s", diff)
	}
}
