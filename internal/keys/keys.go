// Package keys provides string constants for Bubble Tea v2 key press events
// and maps calculator keystrokes to expression actions.
//
// The constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// so they match the runtime values exactly. Single-character keys like "h"
// or "?" are compared directly.
package keys

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/abacus/internal/calc"
)

// Navigation keys
var (
	Up   = tea.KeyPressMsg{Code: tea.KeyUp}.String()   // "up"
	Down = tea.KeyPressMsg{Code: tea.KeyDown}.String() // "down"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Delete    = tea.KeyPressMsg{Code: tea.KeyDelete}.String()                   // "delete"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlS = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String() // "ctrl+s"
	CtrlV = (tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}).String() // "ctrl+v"
)

// ActionKind is what a calculator keystroke does to the expression.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAppend
	ActionEvaluate
	ActionBackspace
	ActionClear
)

// Action is a resolved calculator keystroke. Token is set for ActionAppend
// and is always a digit, the decimal point or an operator glyph.
type Action struct {
	Kind  ActionKind
	Token string
}

// Resolve maps a key string to a calculator action. Keys with no calculator
// meaning resolve to ActionNone so the caller can treat them as shortcuts.
func Resolve(key string) Action {
	switch key {
	case Enter, "=":
		return Action{Kind: ActionEvaluate}
	case Backspace:
		return Action{Kind: ActionBackspace}
	case Escape:
		return Action{Kind: ActionClear}
	case "*", "x", "X":
		return Action{Kind: ActionAppend, Token: calc.OpMultiply}
	}
	if tok, ok := calc.Normalize(key); ok {
		return Action{Kind: ActionAppend, Token: tok}
	}
	return Action{Kind: ActionNone}
}
