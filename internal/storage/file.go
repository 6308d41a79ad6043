package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	abacuserrors "github.com/zhubert/abacus/internal/errors"
)

// FileSlot keeps each slot in <dir>/<name>.json.
type FileSlot struct {
	mu  sync.Mutex
	dir string
}

// NewFileSlot creates dir if needed.
func NewFileSlot(dir string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, abacuserrors.E(abacuserrors.Op("storage.NewFileSlot"), abacuserrors.KindIO, err, dir)
	}
	return &FileSlot{dir: dir}, nil
}

func (s *FileSlot) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Get reads a slot; a missing file is not an error.
func (s *FileSlot) Get(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, abacuserrors.SlotReadFailed(name, err)
	}
	return data, nil
}

// Put writes via a temp file then rename so a crash never leaves a partial
// snapshot behind.
func (s *FileSlot) Put(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return abacuserrors.SlotWriteFailed(name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return abacuserrors.SlotWriteFailed(name, err)
	}
	return nil
}

func (s *FileSlot) Close() error { return nil }

// Dir returns the directory holding the slot files.
func (s *FileSlot) Dir() string { return s.dir }
