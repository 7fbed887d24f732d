package session

import "sync"

// Store persists session snapshots by session key. Implementations must
// treat a missing key as (nil, nil), not an error.
type Store interface {
	Get(key string) (*Snapshot, error)
	Set(key string, snap *Snapshot) error
	Clear(key string) error
}

// MemoryStore keeps snapshots in-process. Zero value is not usable; call
// NewMemoryStore.
type MemoryStore struct {
	mu    sync.Mutex
	snaps map[string]*Snapshot
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*Snapshot)}
}

func (m *MemoryStore) Get(key string) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snaps[key], nil
}

func (m *MemoryStore) Set(key string, snap *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[key] = snap
	return nil
}

func (m *MemoryStore) Clear(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, key)
	return nil
}
