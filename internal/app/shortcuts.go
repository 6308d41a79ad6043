package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/abacus/internal/keys"
	"github.com/zhubert/abacus/internal/ui"
)

// Shortcut is an app-level key that is not an expression keystroke.
type Shortcut struct {
	Key         string
	Description string
	Handler     func(m *Model) (tea.Model, tea.Cmd)
}

// ShortcutRegistry lists the calculator-mode shortcuts. Panel keys are
// handled by the panel handlers before these are consulted.
var ShortcutRegistry = []Shortcut{
	{Key: "h", Description: "Toggle history panel", Handler: shortcutHistory},
	{Key: "u", Description: "Toggle unit conversion panel", Handler: shortcutConvert},
	{Key: "t", Description: "Cycle theme", Handler: shortcutTheme},
	{Key: "y", Description: "Copy result", Handler: shortcutCopy},
	{Key: keys.CtrlV, Description: "Paste from clipboard", Handler: shortcutPaste},
	{Key: "?", Description: "Show help", Handler: shortcutHelp},
	{Key: "q", Description: "Quit", Handler: shortcutQuit},
}

// ExecuteShortcut runs the shortcut bound to key, if any.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key == key {
			result, cmd := s.Handler(m)
			return result, cmd, true
		}
	}
	return m, nil, false
}

func shortcutHistory(m *Model) (tea.Model, tea.Cmd) {
	return m, m.togglePanel(ui.PanelHistory)
}

func shortcutConvert(m *Model) (tea.Model, tea.Cmd) {
	if !m.panels.IsOpen(ui.PanelConvert) {
		if result, ok := m.calculator.Result(); ok && !result.Failed() {
			m.convertP.SetValue(result.String())
		}
	}
	return m, m.togglePanel(ui.PanelConvert)
}

func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	name := ui.CycleTheme()
	m.config.SetTheme(string(name))
	// huh forms capture their theme at build time.
	m.convertP.Restyle()
	return m, m.saveConfigOrFlash()
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	return m, copyResultCmd(m.calculator.ResultText())
}

func shortcutPaste(m *Model) (tea.Model, tea.Cmd) {
	return m, pasteClipboardCmd
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewHelpState())
	m.footer.SetMode(ui.FooterHelp)
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
