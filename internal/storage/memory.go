package storage

import "sync"

// MemoryPrefs is an in-memory preference store. It is used when the database
// cannot be opened and as a fake in tests.
type MemoryPrefs struct {
	mu     sync.Mutex
	values map[string]int
	writes int
}

// NewMemoryPrefs creates an empty in-memory store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]int)}
}

// GetInt returns the integer stored under key, or def if the key is absent.
func (m *MemoryPrefs) GetInt(key string, def int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// SetInt stores value under key.
func (m *MemoryPrefs) SetInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[string]int)
	}
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns how many times SetInt was called.
func (m *MemoryPrefs) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
