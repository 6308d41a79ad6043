// Package errors provides structured error types for abacus.
// These errors carry the operation that failed and a coarse category so the
// UI can decide whether to flash, mark the result, or ignore the failure.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindEval
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindEval:
		return "evaluation error"
	case KindStorage:
		return "storage error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for abacus.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Storage errors
func SlotReadFailed(name string, err error) error {
	return E(Op("storage.Get"), KindStorage, fmt.Sprintf("failed to read slot %s", name), err)
}

func SlotWriteFailed(name string, err error) error {
	return E(Op("storage.Put"), KindStorage, fmt.Sprintf("failed to write slot %s", name), err)
}

func UnknownBackend(name string) error {
	return E(Op("storage.Open"), KindInvalid, fmt.Sprintf("unknown storage backend %q", name))
}

// History errors
func HistoryIndexOutOfRange(index, length int) error {
	return E(Op("history.Remove"), KindNotFound, fmt.Sprintf("index %d out of range (%d entries)", index, length))
}

// Evaluation errors
func SyntaxError(pos int, reason string) error {
	return E(Op("calc.Evaluate"), KindEval, fmt.Sprintf("at %d: %s", pos, reason))
}

// Conversion errors
func UnknownCategory(category string) error {
	return E(Op("convert.Convert"), KindInvalid, fmt.Sprintf("unknown category %q", category))
}

func UnknownUnit(category, unit string) error {
	return E(Op("convert.Convert"), KindInvalid, fmt.Sprintf("unknown %s unit %q", category, unit))
}
