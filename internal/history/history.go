// Package history keeps the most recent successful calculations, newest
// first, and persists the whole list to a storage slot after every change.
package history

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/abacus/internal/calc"
	abacuserrors "github.com/zhubert/abacus/internal/errors"
	"github.com/zhubert/abacus/internal/logger"
	"github.com/zhubert/abacus/internal/storage"
)

const (
	// MaxEntries bounds the list; recording past it evicts the oldest entry.
	MaxEntries = 10

	// SlotName is the storage slot holding the serialized list.
	SlotName = "calcHistory"

	// TimestampLayout is the human-readable clock time stored with each entry.
	TimestampLayout = "3:04:05 PM"
)

// Entry is one recorded calculation.
type Entry struct {
	ID        string      `json:"id,omitempty"`
	Input     string      `json:"input"`
	Result    calc.Result `json:"result"`
	Timestamp string      `json:"timestamp"`
}

// Store owns the history list. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	slot    storage.Slot
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store backed by slot. Call Load to read the
// persisted list.
func NewStore(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot: slot,
		now:  time.Now,
		log:  logger.ComponentLogger("History"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the persisted snapshot. A missing or
// unreadable snapshot yields an empty list; only slot read failures are
// returned.
func (s *Store) Load() error {
	data, err := s.slot.Get(SlotName)
	if err != nil {
		s.mu.Lock()
		s.entries = nil
		s.mu.Unlock()
		return err
	}

	var entries []Entry
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			s.log.Warn("discarding unreadable history snapshot", "error", err)
			entries = nil
		}
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	s.log.Debug("loaded", "entries", len(entries))
	return nil
}

// Record inserts a new entry at the front and persists. The entry is kept in
// memory even if the write fails.
func (s *Store) Record(input string, result calc.Result) (Entry, error) {
	e := Entry{
		ID:        uuid.New().String(),
		Input:     input,
		Result:    result,
		Timestamp: s.now().Format(TimestampLayout),
	}

	s.mu.Lock()
	s.entries = slices.Insert(s.entries, 0, e)
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
	err := s.persistLocked()
	n := len(s.entries)
	s.mu.Unlock()

	s.log.Debug("recorded", "input", input, "result", result.String(), "entries", n)
	return e, err
}

// Remove deletes the entry at index (0 is newest).
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return abacuserrors.HistoryIndexOutOfRange(index, len(s.entries))
	}
	s.entries = slices.Delete(s.entries, index, index+1)
	return s.persistLocked()
}

// Clear empties the list.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return s.persistLocked()
}

// Entries returns a copy of the list, newest first.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// At returns the entry at index.
func (s *Store) At(index int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[index], true
}

// persistLocked overwrites the whole snapshot. Caller holds s.mu.
func (s *Store) persistLocked() error {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return abacuserrors.SlotWriteFailed(SlotName, err)
	}
	if err := s.slot.Put(SlotName, data); err != nil {
		s.log.Error("failed to persist history", "error", err)
		return err
	}
	return nil
}
