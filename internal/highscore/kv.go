package highscore

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by KV.Get when the key has never been set.
var ErrNotFound = errors.New("highscore: key not found")

// KV is the key-value store the ledger persists to.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// MemoryKV is an in-process KV. The CLI falls back to it when the database
// cannot be opened.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
