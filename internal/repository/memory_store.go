package repository

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process RecordStore. Records are copied in and out so
// callers never share backing arrays with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
	values      map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]json.RawMessage),
		values:      make(map[string]string),
	}
}

var _ RecordStore = (*MemoryStore)(nil)

func (m *MemoryStore) ReadAll(_ context.Context, collection string) ([]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRecords(m.collections[collection]), nil
}

func (m *MemoryStore) WriteAll(_ context.Context, collection string, records []json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = cloneRecords(records)
	return nil
}

func (m *MemoryStore) ReadValue(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) WriteValue(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func cloneRecords(in []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, len(in))
	for i, rec := range in {
		out[i] = append(json.RawMessage(nil), rec...)
	}
	return out
}
