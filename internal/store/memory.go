package store

import "sync"

// MemoryBackend is a map-backed Backend used by tests and ephemeral mode.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string]string

	// FailWrites makes every Set/Delete return ErrWriteFailed, for
	// exercising the dropped-write policy.
	FailWrites bool
}

// ErrWriteFailed is returned by a MemoryBackend with FailWrites set.
var ErrWriteFailed = errWriteFailed{}

type errWriteFailed struct{}

func (errWriteFailed) Error() string { return "simulated write failure" }

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string]string)}
}

func (m *MemoryBackend) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.records[key]
	return v, ok
}

func (m *MemoryBackend) Set(key, value string) error {
	if m.FailWrites {
		return ErrWriteFailed
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = value
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	if m.FailWrites {
		return ErrWriteFailed
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

func (m *MemoryBackend) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *MemoryBackend) Close() error { return nil }

// Len reports the number of stored records. Test helper.
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
