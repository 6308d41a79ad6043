// Package storage provides named byte slots that survive restarts. A slot is
// the unit the history store reads and writes as a whole.
package storage

import (
	"slices"
	"strings"

	abacuserrors "github.com/zhubert/abacus/internal/errors"
)

// Backend names accepted by Open and the "storage" config field.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Backends lists every backend name in the order shown to users.
var Backends = []string{BackendFile, BackendSQLite, BackendMemory}

// Slot is a key/value store of whole snapshots. Get returns nil and no error
// for a name that was never written.
type Slot interface {
	Get(name string) ([]byte, error)
	Put(name string, data []byte) error
	Close() error
}

// Open returns the slot backend called name rooted at dir. The memory backend
// ignores dir.
func Open(backend, dir string) (Slot, error) {
	switch strings.ToLower(backend) {
	case "", BackendFile:
		return NewFileSlot(dir)
	case BackendSQLite:
		return NewSQLiteSlot(dir)
	case BackendMemory:
		return NewMemorySlot(), nil
	}
	return nil, abacuserrors.UnknownBackend(backend)
}

// IsBackend reports whether name is a supported backend.
func IsBackend(name string) bool {
	return slices.Contains(Backends, name)
}
