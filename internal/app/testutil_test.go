package app

import (
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/abacus/internal/config"
	"github.com/zhubert/abacus/internal/history"
	"github.com/zhubert/abacus/internal/keys"
	"github.com/zhubert/abacus/internal/storage"
	"github.com/zhubert/abacus/internal/ui"
)

// testConfig creates a config whose Save writes into a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	cfg.SetStorage(storage.BackendMemory)
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })
	return cfg
}

// testStore creates a loaded history store over an in-memory slot with a
// fixed clock.
func testStore(t *testing.T) *history.Store {
	t.Helper()
	clock := time.Date(2024, 3, 1, 15, 9, 26, 0, time.UTC)
	store := history.NewStore(storage.NewMemorySlot(), history.WithClock(func() time.Time { return clock }))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return store
}

// testModel creates a test Model with the given config.
func testModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	return New(cfg, testStore(t), "0.0.0-test")
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int) *Model {
	t.Helper()
	m := testModel(t, testConfig(t))
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Delete:
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlV:
		return tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// mouseClick creates a tea.MouseClickMsg at the given coordinates.
func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// clickButton clicks the centre of the keypad button with the given value.
func clickButton(t *testing.T, m *Model, value string) tea.Cmd {
	t.Helper()
	kx, ky := m.keypadOrigin()
	for _, b := range m.keypad.Buttons() {
		if b.Value == value {
			r := b.Bounds()
			_, cmd := m.Update(mouseClick(kx+r.Min.X+r.Dx()/2, ky+r.Min.Y))
			return cmd
		}
	}
	t.Fatalf("no keypad button %q", value)
	return nil
}
