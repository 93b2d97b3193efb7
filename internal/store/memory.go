package store

import (
	"context"
	"maps"
	"sync"
)

// Memory keeps slot documents in process memory.
type Memory struct {
	mu       sync.Mutex
	docs     map[Slot]string
	writeErr error
	writes   int
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{docs: make(map[Slot]string)}
}

// ReadSlot returns the document stored for slot.
func (m *Memory) ReadSlot(_ context.Context, slot Slot) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[slot]
	return data, ok, nil
}

// WriteSlots stores every document, or none if a write error is set.
func (m *Memory) WriteSlots(_ context.Context, docs map[Slot]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	maps.Copy(m.docs, docs)
	m.writes++
	return nil
}

// Put stores a raw document for slot, bypassing encoding. Tests use it to
// plant corrupt data.
func (m *Memory) Put(slot Slot, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[slot] = data
}

// Get returns the raw document for slot.
func (m *Memory) Get(slot Slot) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[slot]
	return data, ok
}

// FailWrites makes every subsequent WriteSlots return err. nil clears it.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Writes reports how many WriteSlots calls succeeded.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
