package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"secondsole/internal/types"
)

// failingKV simulates an unavailable backing medium.
type failingKV struct{}

func (failingKV) Get(string) (string, bool, error) { return "", false, errors.New("backing gone") }
func (failingKV) Set(string, string) error         { return errors.New("backing gone") }
func (failingKV) Delete(string) error              { return errors.New("backing gone") }

func newMemStore() (*Store, *MemoryKV) {
	kv := NewMemoryKV()
	return New(kv, "", nil), kv
}

func TestReadMissingRecordReturnsDefaults(t *testing.T) {
	s, _ := newMemStore()
	if diff := cmp.Diff(types.DefaultSchema(), s.Read()); diff != "" {
		t.Errorf("Read of empty store mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFillsMissingTopLevelFields(t *testing.T) {
	s, kv := newMemStore()

	// A record from an older version: no rotation, no rsvpedEvents, no
	// privacyAudit. Every field must still come back populated.
	kv.Set(DefaultKey, `{"profile":{"name":"Dana","isGuest":true},"cart":[{"shoeId":"x","size":9,"quantity":2}]}`)

	got := s.Read()
	if got.Profile.Name != "Dana" || !got.Profile.IsGuest {
		t.Errorf("Stored profile did not win: %+v", got.Profile)
	}
	if len(got.Cart) != 1 || got.Cart[0].Quantity != 2 {
		t.Errorf("Stored cart did not win: %+v", got.Cart)
	}
	if got.Rotation == nil || got.RSVPedEvents == nil {
		t.Error("Missing collections were not filled from defaults")
	}
	if got.PrivacyAudit.StorageUsed != "0KB" {
		t.Errorf("Missing privacyAudit not defaulted, got %+v", got.PrivacyAudit)
	}
}

func TestReadStoredEmptyArrayWins(t *testing.T) {
	s, kv := newMemStore()

	// An explicitly stored empty cart is a value, not an absence: the merge
	// must keep it rather than re-default it.
	kv.Set(DefaultKey, `{"cart":[]}`)
	got := s.Read()
	if got.Cart == nil || len(got.Cart) != 0 {
		t.Errorf("Stored empty cart was not preserved: %+v", got.Cart)
	}
}

func TestReadCorruptPayloadReturnsDefaults(t *testing.T) {
	s, kv := newMemStore()
	kv.Set(DefaultKey, `{"profile": not json at all`)
	if diff := cmp.Diff(types.DefaultSchema(), s.Read()); diff != "" {
		t.Errorf("Corrupt payload did not degrade to defaults (-want +got):\n%s", diff)
	}
}

func TestReadCorruptFieldKeepsOtherFields(t *testing.T) {
	s, kv := newMemStore()
	kv.Set(DefaultKey, `{"profile":{"name":"Dana"},"rotation":"oops"}`)

	got := s.Read()
	if got.Profile.Name != "Dana" {
		t.Errorf("Healthy field was lost to a sibling's corruption: %+v", got.Profile)
	}
	if got.Rotation == nil || len(got.Rotation) != 0 {
		t.Errorf("Corrupt field did not revert to default: %+v", got.Rotation)
	}
}

func TestReadUnavailableBackingReturnsDefaults(t *testing.T) {
	s := New(failingKV{}, "", nil)
	if diff := cmp.Diff(types.DefaultSchema(), s.Read()); diff != "" {
		t.Errorf("Unavailable backing did not degrade to defaults (-want +got):\n%s", diff)
	}
	// Write and Wipe against a dead backing must not panic or surface errors.
	s.Write(types.DefaultSchema())
	s.Wipe()
}

func TestWriteRecomputesStorageUsed(t *testing.T) {
	s, _ := newMemStore()

	data := types.DefaultSchema()
	data.Profile.Name = "Dana"
	data.PrivacyAudit.StorageUsed = "999.99KB" // stale, must be overwritten
	s.Write(data)

	got := s.Read()
	if got.PrivacyAudit.StorageUsed == "999.99KB" || got.PrivacyAudit.StorageUsed == "0KB" {
		t.Errorf("storageUsed was not recomputed on write: %q", got.PrivacyAudit.StorageUsed)
	}
	if !strings.HasSuffix(got.PrivacyAudit.StorageUsed, "KB") {
		t.Errorf("storageUsed has unexpected format: %q", got.PrivacyAudit.StorageUsed)
	}
	if s.StorageUsed() == "0KB" {
		t.Error("StorageUsed reported empty after a successful write")
	}
}

func TestWipeThenReadIsVirginDefault(t *testing.T) {
	s, _ := newMemStore()

	// Dirty the record thoroughly, including the collections.
	data := s.Read()
	data.Profile.IsGuest = true
	data.Profile.MilesRun = 120
	data.Rotation = append(data.Rotation, types.ShoeRotationItem{ID: "r1", Miles: 50, Threshold: 350})
	data.IsAuthenticated = true
	s.Write(data)

	s.Wipe()

	if diff := cmp.Diff(types.DefaultSchema(), s.Read()); diff != "" {
		t.Errorf("Read after Wipe is not a virgin default (-want +got):\n%s", diff)
	}
}

func TestRoundTripPreservesRecord(t *testing.T) {
	s, _ := newMemStore()

	data := types.DefaultSchema()
	data.Profile = types.UserProfile{Name: "Dana", Email: "d@example.com", AttendanceCount: 3, MilesRun: 88.5}
	data.GaitProfile = types.GaitProfile{
		Terrain:       types.TerrainTrail,
		Pronation:     types.PronationOver,
		InjuryHistory: types.InjurySet{types.InjuryShin, types.InjuryKnee},
	}
	data.Cart = []types.CartItem{{ShoeID: "x", Size: 9.5, Quantity: 2}}
	data.RSVPedEvents = []string{"ev-1"}
	data.IsAuthenticated = true
	s.Write(data)

	got := s.Read()
	// storageUsed is derived on write, so compare everything else.
	data.PrivacyAudit.StorageUsed = got.PrivacyAudit.StorageUsed
	if diff := cmp.Diff(data, got); diff != "" {
		t.Errorf("Round trip mutated the record (-want +got):\n%s", diff)
	}
}
