package storage

import (
	"slices"
	"sync"
)

// MemorySlot keeps slots in process memory; nothing outlives the process.
type MemorySlot struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{slots: make(map[string][]byte)}
}

func (s *MemorySlot) Get(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.slots[name]
	if !ok {
		return nil, nil
	}
	return slices.Clone(data), nil
}

func (s *MemorySlot) Put(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[name] = slices.Clone(data)
	return nil
}

func (s *MemorySlot) Close() error { return nil }
