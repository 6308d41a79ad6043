// Package clipboard reads and writes text on the system clipboard.
package clipboard

import (
	"strings"
	"sync"

	"golang.design/x/clipboard"

	abacuserrors "github.com/zhubert/abacus/internal/errors"
	"github.com/zhubert/abacus/internal/logger"
)

// backend is the clipboard implementation; tests swap it out.
type backend struct {
	init  func() error
	read  func() []byte
	write func([]byte)
}

var systemBackend = backend{
	init: clipboard.Init,
	read: func() []byte { return clipboard.Read(clipboard.FmtText) },
	write: func(data []byte) {
		clipboard.Write(clipboard.FmtText, data)
	},
}

var (
	mu          sync.Mutex
	current     = systemBackend
	initialized bool
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := current.init(); err != nil {
		logger.ComponentLogger("Clipboard").Warn("failed to initialize", "error", err)
		return abacuserrors.E(abacuserrors.Op("clipboard.Init"), abacuserrors.KindIO, err)
	}
	initialized = true
	return nil
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	current.write([]byte(text))
	logger.ComponentLogger("Clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText returns the clipboard text with surrounding whitespace trimmed.
// An empty clipboard is not an error.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	data := current.read()
	if data == nil {
		return "", nil
	}
	return strings.TrimSpace(string(data)), nil
}

// SetBackend replaces the system clipboard, for tests.
func SetBackend(init func() error, read func() []byte, write func([]byte)) {
	mu.Lock()
	defer mu.Unlock()
	current = backend{init: init, read: read, write: write}
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	mu.Lock()
	defer mu.Unlock()
	current = systemBackend
	initialized = false
}
