package store

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"secondsole/internal/types"
)

// DefaultKey is the well-known key the record lives under. Changing it
// orphans every existing record, so treat it as frozen.
const DefaultKey = "second_sole_medina_data"

// Store owns the single persisted record. Read never fails and always yields
// a fully populated Schema; Write is best effort and recomputes the derived
// storage accounting before committing. Storage failures stop here: they are
// logged and absorbed, never surfaced to callers.
type Store struct {
	kv     KV
	key    string
	logger *zap.Logger
}

// New builds a store over the given backing. A nil logger is replaced with a
// no-op logger. An empty key falls back to DefaultKey.
func New(kv KV, key string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key, logger: logger}
}

// Read loads the record, repairing partial or corrupt payloads. The merge is
// shallow and per-top-level-field: any key present in the stored payload wins
// (including empty collections), anything missing is filled from a fresh
// DefaultSchema. Nested sub-fields are never defaulted recursively.
func (s *Store) Read() types.Schema {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Warn("storage unavailable, serving defaults", zap.Error(err))
		return types.DefaultSchema()
	}
	if !ok {
		return types.DefaultSchema()
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		s.logger.Warn("stored record is corrupt, serving defaults", zap.Error(err))
		return types.DefaultSchema()
	}
	return s.merge(fields)
}

// merge applies the safety merge: {...defaults, ...stored} at the top level.
// A field that is present but fails to decode reverts to its default so one
// bad field cannot poison the rest of the record.
func (s *Store) merge(fields map[string]json.RawMessage) types.Schema {
	out := types.DefaultSchema()

	unmarshalField := func(name string, dst interface{}, reset func()) {
		data, present := fields[name]
		if !present {
			return
		}
		if err := json.Unmarshal(data, dst); err != nil {
			s.logger.Warn("stored field is corrupt, keeping default",
				zap.String("field", name), zap.Error(err))
			reset()
		}
	}

	def := types.DefaultSchema()
	unmarshalField("profile", &out.Profile, func() { out.Profile = def.Profile })
	unmarshalField("gaitProfile", &out.GaitProfile, func() { out.GaitProfile = def.GaitProfile })
	unmarshalField("rotation", &out.Rotation, func() { out.Rotation = def.Rotation })
	unmarshalField("cart", &out.Cart, func() { out.Cart = def.Cart })
	unmarshalField("rsvpedEvents", &out.RSVPedEvents, func() { out.RSVPedEvents = def.RSVPedEvents })
	unmarshalField("privacyAudit", &out.PrivacyAudit, func() { out.PrivacyAudit = def.PrivacyAudit })
	unmarshalField("isAuthenticated", &out.IsAuthenticated, func() { out.IsAuthenticated = def.IsAuthenticated })

	// Stored arrays decode to nil when the value was JSON null; keep the
	// collections non-nil so callers can range and append without checks.
	if out.Rotation == nil {
		out.Rotation = def.Rotation
	}
	if out.Cart == nil {
		out.Cart = def.Cart
	}
	if out.RSVPedEvents == nil {
		out.RSVPedEvents = def.RSVPedEvents
	}
	return out
}

// Write commits the record. The storageUsed audit field is recomputed from
// the serialized payload on every write so it can never go stale.
func (s *Store) Write(data types.Schema) {
	probe, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("failed to serialize record, write dropped", zap.Error(err))
		return
	}
	data.PrivacyAudit.StorageUsed = formatKB(len(probe))

	payload, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("failed to serialize record, write dropped", zap.Error(err))
		return
	}
	if err := s.kv.Set(s.key, string(payload)); err != nil {
		s.logger.Error("failed to persist record", zap.Error(err))
	}
}

// Wipe deletes all persisted state. The next Read re-derives a virgin default
// from the constructor, so no in-memory value from a previous session can
// leak into the fresh one.
func (s *Store) Wipe() {
	if err := s.kv.Delete(s.key); err != nil {
		s.logger.Error("failed to wipe record", zap.Error(err))
	}
}

// StorageUsed reports the size of the currently persisted payload.
func (s *Store) StorageUsed() string {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil || !ok {
		return formatKB(0)
	}
	return formatKB(len(raw))
}

func formatKB(n int) string {
	if n == 0 {
		return "0KB"
	}
	return fmt.Sprintf("%.2fKB", float64(n)/1024)
}
