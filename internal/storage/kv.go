package storage

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrCorrupt       = errors.New("stored value is corrupt")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrInvalidKey    = errors.New("invalid key")
)

// KV is the string key/value store everything is persisted to.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
	Keys() ([]string, error)
}

// MemoryStore keeps everything in a map. QuotaBytes > 0 caps the total size
// of keys plus values, like a browser's local storage would.
type MemoryStore struct {
	mu         sync.Mutex
	data       map[string]string
	QuotaBytes int
}

func NewMemoryStore(quotaBytes int) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]string),
		QuotaBytes: quotaBytes,
	}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QuotaBytes > 0 {
		used := len(key) + len(value)
		for k, v := range m.data {
			if k != key {
				used += len(k) + len(v)
			}
		}
		if used > m.QuotaBytes {
			return ErrQuotaExceeded
		}
	}

	m.data[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
