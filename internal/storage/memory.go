package storage

import (
	"context"
	"sync"
)

// Memory keeps every client's items in process memory.
type Memory struct {
	mu    sync.RWMutex
	items map[string]map[string][]byte
}

var _ Provider = (*Memory)(nil)

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]map[string][]byte)}
}

// For returns the storage area of clientID.
func (m *Memory) For(clientID string) Storage {
	return &memoryArea{parent: m, clientID: clientID}
}

type memoryArea struct {
	parent   *Memory
	clientID string
}

func (a *memoryArea) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	a.parent.mu.RLock()
	defer a.parent.mu.RUnlock()
	v, ok := a.parent.items[a.clientID][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (a *memoryArea) SetItem(_ context.Context, key string, value []byte) error {
	a.parent.mu.Lock()
	defer a.parent.mu.Unlock()
	area, ok := a.parent.items[a.clientID]
	if !ok {
		area = make(map[string][]byte)
		a.parent.items[a.clientID] = area
	}
	area[key] = append([]byte(nil), value...)
	return nil
}

func (a *memoryArea) RemoveItem(_ context.Context, key string) error {
	a.parent.mu.Lock()
	defer a.parent.mu.Unlock()
	area, ok := a.parent.items[a.clientID]
	if !ok {
		return nil
	}
	delete(area, key)
	if len(area) == 0 {
		delete(a.parent.items, a.clientID)
	}
	return nil
}
