// Package storage persists the board to durable key/value storage.
package storage

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound      = errors.New("storage: key not found")
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Store is a durable key/value store. Put overwrites any previous value.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Close() error
}

// MemoryStore keeps values in memory only.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// QuotaStore rejects writes larger than Limit bytes, like a browser's
// local storage quota. A Limit of 0 disables the check.
type QuotaStore struct {
	Store
	Limit int
}

func (q *QuotaStore) Put(key string, data []byte) error {
	if q.Limit > 0 && len(data) > q.Limit {
		return fmt.Errorf("%w: %d bytes over limit of %d", ErrQuotaExceeded, len(data), q.Limit)
	}
	return q.Store.Put(key, data)
}
