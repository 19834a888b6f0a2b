// Package profile provides typed read-modify-write accessors over the
// persistent store. Every mutation is a full cycle: read the record, apply
// the change, write the whole record back. No partial-field writes exist.
package profile

import (
	"secondsole/internal/store"
	"secondsole/internal/types"
)

// Repository is the typed access layer over the single persisted record.
type Repository struct {
	store *store.Store
}

// NewRepository wraps the given store.
func NewRepository(st *store.Store) *Repository {
	return &Repository{store: st}
}

// Mutate runs one read-modify-write cycle and returns the record as written.
// It is the single mutation primitive; the typed operations below and the
// cart/rotation layers build on it so cross-entity updates (like logging
// miles into both a rotation item and the profile total) commit atomically
// within the one record.
func (r *Repository) Mutate(apply func(*types.Schema)) types.Schema {
	data := r.store.Read()
	apply(&data)
	r.store.Write(data)
	return data
}

// Raw returns the full current record.
func (r *Repository) Raw() types.Schema {
	return r.store.Read()
}

// Wipe clears all persisted state.
func (r *Repository) Wipe() {
	r.store.Wipe()
}

// =============================================================================
// USER PROFILE
// =============================================================================

// ProfilePatch carries the fields to change; nil fields are left untouched.
type ProfilePatch struct {
	Name            *string
	Email           *string
	IsGuest         *bool
	AttendanceCount *int
	MilesRun        *float64
}

// Profile returns the current user profile.
func (r *Repository) Profile() types.UserProfile {
	return r.store.Read().Profile
}

// UpdateProfile shallow-merges the patch into the stored profile and returns
// the result.
func (r *Repository) UpdateProfile(patch ProfilePatch) types.UserProfile {
	data := r.Mutate(func(s *types.Schema) {
		if patch.Name != nil {
			s.Profile.Name = *patch.Name
		}
		if patch.Email != nil {
			s.Profile.Email = *patch.Email
		}
		if patch.IsGuest != nil {
			s.Profile.IsGuest = *patch.IsGuest
		}
		if patch.AttendanceCount != nil {
			s.Profile.AttendanceCount = *patch.AttendanceCount
		}
		if patch.MilesRun != nil {
			s.Profile.MilesRun = *patch.MilesRun
		}
	})
	return data.Profile
}

// =============================================================================
// GAIT PROFILE
// =============================================================================

// GaitPatch carries gait answers to change. Single-choice fields overwrite;
// InjuryHistory overwrites wholesale (the caller supplies the complete new
// set, not a delta) and is normalized on the way in.
type GaitPatch struct {
	Terrain         *types.Terrain
	Gender          *types.Gender
	ExperienceLevel *types.ExperienceLevel
	Strike          *types.Strike
	Arch            *types.Arch
	Pronation       *types.Pronation
	WeeklyMiles     *types.WeeklyMiles
	DistanceGoals   *types.DistanceGoals
	CushionPref     *types.Cushion
	DropPref        *types.DropPref
	FootShape       *types.FootShape
	InjuryHistory   types.InjurySet
}

// GaitProfile returns the current gait answers.
func (r *Repository) GaitProfile() types.GaitProfile {
	return r.store.Read().GaitProfile
}

// UpdateGaitProfile merges the patch. Gait analysis requires a local account;
// for guest profiles the call is a silent no-op and the stored answers are
// returned unchanged.
func (r *Repository) UpdateGaitProfile(patch GaitPatch) types.GaitProfile {
	data := r.store.Read()
	if data.Profile.IsGuest {
		return data.GaitProfile
	}
	data = r.Mutate(func(s *types.Schema) {
		g := &s.GaitProfile
		if patch.Terrain != nil {
			g.Terrain = *patch.Terrain
		}
		if patch.Gender != nil {
			g.Gender = *patch.Gender
		}
		if patch.ExperienceLevel != nil {
			g.ExperienceLevel = *patch.ExperienceLevel
		}
		if patch.Strike != nil {
			g.Strike = *patch.Strike
		}
		if patch.Arch != nil {
			g.Arch = *patch.Arch
		}
		if patch.Pronation != nil {
			g.Pronation = *patch.Pronation
		}
		if patch.WeeklyMiles != nil {
			g.WeeklyMiles = *patch.WeeklyMiles
		}
		if patch.DistanceGoals != nil {
			g.DistanceGoals = *patch.DistanceGoals
		}
		if patch.CushionPref != nil {
			g.CushionPref = *patch.CushionPref
		}
		if patch.DropPref != nil {
			g.DropPref = *patch.DropPref
		}
		if patch.FootShape != nil {
			g.FootShape = *patch.FootShape
		}
		if patch.InjuryHistory != nil {
			g.InjuryHistory = patch.InjuryHistory.Normalize()
		}
	})
	return data.GaitProfile
}

// =============================================================================
// ROTATION / CART COLLECTIONS
// =============================================================================

// Rotation returns the tracked shoes.
func (r *Repository) Rotation() []types.ShoeRotationItem {
	return r.store.Read().Rotation
}

// AddToRotation appends a new tracked shoe.
func (r *Repository) AddToRotation(item types.ShoeRotationItem) {
	r.Mutate(func(s *types.Schema) {
		s.Rotation = append(s.Rotation, item)
	})
}

// RemoveFromRotation deletes the instance. Removing an unknown id is a no-op.
func (r *Repository) RemoveFromRotation(instanceID string) {
	r.Mutate(func(s *types.Schema) {
		kept := s.Rotation[:0]
		for _, item := range s.Rotation {
			if item.ID != instanceID {
				kept = append(kept, item)
			}
		}
		s.Rotation = kept
	})
}

// Cart returns the current cart lines.
func (r *Repository) Cart() []types.CartItem {
	return r.store.Read().Cart
}

// =============================================================================
// RSVPS
// =============================================================================

// RSVPs returns the RSVPed event ids.
func (r *Repository) RSVPs() []string {
	return r.store.Read().RSVPedEvents
}

// HasRSVP reports whether the event is RSVPed.
func (r *Repository) HasRSVP(eventID string) bool {
	for _, id := range r.store.Read().RSVPedEvents {
		if id == eventID {
			return true
		}
	}
	return false
}

// RSVPEvent adds the event to the RSVP set. Idempotent: RSVPing twice has the
// same effect as once. A newly added RSVP also counts toward attendance;
// repeats do not.
func (r *Repository) RSVPEvent(eventID string) {
	r.Mutate(func(s *types.Schema) {
		for _, id := range s.RSVPedEvents {
			if id == eventID {
				return
			}
		}
		s.RSVPedEvents = append(s.RSVPedEvents, eventID)
		s.Profile.AttendanceCount++
	})
}

// RemoveRSVP removes the event from the RSVP set. Attendance history is not
// retracted.
func (r *Repository) RemoveRSVP(eventID string) {
	r.Mutate(func(s *types.Schema) {
		kept := s.RSVPedEvents[:0]
		for _, id := range s.RSVPedEvents {
			if id != eventID {
				kept = append(kept, id)
			}
		}
		s.RSVPedEvents = kept
	})
}

// =============================================================================
// AUTH & AUDIT
// =============================================================================

// IsAuthenticated reports the local auth flag.
func (r *Repository) IsAuthenticated() bool {
	return r.store.Read().IsAuthenticated
}

// SetAuthenticated flips the local auth flag.
func (r *Repository) SetAuthenticated(status bool) {
	r.Mutate(func(s *types.Schema) {
		s.IsAuthenticated = status
	})
}

// PrivacyAudit returns the audit record with the storage size derived fresh
// from the backing rather than trusting the stored copy.
func (r *Repository) PrivacyAudit() types.PrivacyAudit {
	audit := r.store.Read().PrivacyAudit
	audit.StorageUsed = r.store.StorageUsed()
	return audit
}
