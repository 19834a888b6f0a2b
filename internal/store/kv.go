// Package store implements the persistent single-record state store.
// All user state (profile, gait answers, rotation, cart, RSVPs) lives in one
// JSON document under one well-known key in an injected key/value backing.
// Reads always succeed: partial or corrupt payloads are repaired by a shallow
// merge over a freshly constructed default record.
package store

import "sync"

// KV is the backing medium for the persisted record. Implementations must be
// safe for use by a single process; the store layers no locking on top beyond
// what the implementation provides.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores the value under key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}

// MemoryKV is an in-process KV used by tests and ephemeral sessions.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV returns an empty in-memory backing.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
