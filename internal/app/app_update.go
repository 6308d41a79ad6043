package app

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/abacus/internal/calc"
	"github.com/zhubert/abacus/internal/clipboard"
	"github.com/zhubert/abacus/internal/keys"
	"github.com/zhubert/abacus/internal/notification"
	"github.com/zhubert/abacus/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)

	case tea.PasteMsg:
		return m, m.handlePaste(msg.Content)

	case ClipboardPastedMsg:
		if msg.Err != nil {
			m.log.Warn("clipboard read failed", "error", msg.Err)
			return m, m.ShowFlashWarning("Could not read clipboard")
		}
		return m, m.handlePaste(msg.Text)

	case ClipboardCopiedMsg:
		if msg.Err != nil {
			m.log.Warn("clipboard write failed", "error", msg.Err)
			return m, m.ShowFlashWarning("Could not copy to clipboard")
		}
		return m, m.ShowFlashSuccess("Copied " + msg.Text)

	case ui.ResultFlashDoneMsg:
		m.display.EndFlash(msg)
		return m, nil

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()
	}

	if m.modal.IsVisible() {
		_, cmd := m.modal.Update(msg)
		return m, cmd
	}
	if m.panels.IsOpen(ui.PanelConvert) {
		return m, m.convertP.Update(msg)
	}
	return m, nil
}

// handleKeyPress routes a key to the modal, the open panel, the calculator
// and finally the shortcut registry, in that order.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "panel", m.panels.Active().String(), "modal", m.modal.IsVisible())

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch m.panels.Active() {
	case ui.PanelConvert:
		return m.handleConvertKey(msg)
	case ui.PanelHistory:
		if cmd, handled := m.handleHistoryKey(key); handled {
			return m, cmd
		}
	}

	if cmd, handled := m.applyAction(keys.Resolve(key)); handled {
		return m, cmd
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return m, nil
}

func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if help, ok := m.modal.State.(*ui.HelpState); ok && help.IsFiltering() {
		_, cmd := m.modal.Update(msg)
		return m, cmd
	}
	if key == keys.Escape || key == "?" || key == "q" {
		m.modal.Hide()
		m.syncPanels()
		return m, nil
	}
	_, cmd := m.modal.Update(msg)
	return m, cmd
}

// handleConvertKey owns every key while the conversion panel is open so
// digits go to the value field, not the calculator.
func (m *Model) handleConvertKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		return m, m.closePanel()
	case keys.Enter:
		m.convertP.Convert()
		return m, m.rememberCategory()
	case keys.CtrlS:
		m.convertP.Swap()
		return m, nil
	}
	return m, m.convertP.Update(msg)
}

// handleHistoryKey handles history navigation. Keys it does not claim fall
// through to the calculator, so typing still works with the panel open.
func (m *Model) handleHistoryKey(key string) (tea.Cmd, bool) {
	switch key {
	case keys.Up, "k":
		m.historyP.MoveUp()
	case keys.Down, "j":
		m.historyP.MoveDown()
	case keys.Enter:
		return m.loadSelectedHistory(), true
	case "d", keys.Delete:
		return m.removeSelectedHistory(), true
	case "C":
		return m.clearHistory(), true
	case keys.Escape:
		return m.closePanel(), true
	default:
		return nil, false
	}
	return nil, true
}

// applyAction performs a resolved calculator keystroke.
func (m *Model) applyAction(action keys.Action) (tea.Cmd, bool) {
	switch action.Kind {
	case keys.ActionAppend:
		m.calculator.Append(action.Token)
	case keys.ActionBackspace:
		m.calculator.Backspace()
	case keys.ActionClear:
		m.calculator.Clear()
	case keys.ActionEvaluate:
		return m.evaluate(), true
	default:
		return nil, false
	}
	m.syncDisplay()
	return nil, true
}

// pressButton performs a clicked keypad button.
func (m *Model) pressButton(b ui.Button) tea.Cmd {
	var action keys.Action
	switch b.Value {
	case ui.ButtonClear:
		action = keys.Action{Kind: keys.ActionClear}
	case ui.ButtonBackspace:
		action = keys.Action{Kind: keys.ActionBackspace}
	case ui.ButtonEquals:
		action = keys.Action{Kind: keys.ActionEvaluate}
	default:
		action = keys.Action{Kind: keys.ActionAppend, Token: b.Value}
	}
	cmd, _ := m.applyAction(action)
	return cmd
}

// evaluate runs the expression. Incomplete input is ignored; a failure shows
// the error marker and leaves history alone; a success is recorded and
// highlighted.
func (m *Model) evaluate() tea.Cmd {
	input := m.calculator.Input()
	result, err := m.calculator.Evaluate()
	if errors.Is(err, calc.ErrIncomplete) {
		return nil
	}
	m.syncDisplay()

	if err != nil {
		m.log.Debug("evaluation failed", "input", input, "error", err)
		notification.EvaluationFailed(m.config.GetBellOnError())
		return nil
	}

	cmds := []tea.Cmd{m.display.Flash()}
	if _, err := m.history.Record(input, result); err != nil {
		m.log.Warn("failed to save history", "error", err)
		cmds = append(cmds, m.ShowFlashWarning("History not saved: "+err.Error()))
	}
	m.historyP.SetEntries(m.history.Entries())
	return tea.Batch(cmds...)
}

// handlePaste appends the acceptable characters of text to the expression,
// or to the value field when the conversion panel is open.
func (m *Model) handlePaste(text string) tea.Cmd {
	if m.panels.IsOpen(ui.PanelConvert) {
		return m.convertP.Update(tea.PasteMsg{Content: text})
	}
	if n := m.calculator.Paste(text); n == 0 && text != "" {
		return m.ShowFlashInfo("Nothing to paste")
	}
	m.syncDisplay()
	return nil
}

func (m *Model) loadSelectedHistory() tea.Cmd {
	entry, ok := m.historyP.SelectedEntry()
	if !ok {
		return nil
	}
	m.loadHistoryEntry(entry.Input)
	return nil
}

// loadHistoryEntry puts a past expression back in the input. The result
// surface keeps showing the current result until the user evaluates.
func (m *Model) loadHistoryEntry(input string) {
	m.calculator.LoadEntry(input)
	m.syncDisplay()
}

func (m *Model) removeSelectedHistory() tea.Cmd {
	i, ok := m.historyP.Selected()
	if !ok {
		return nil
	}
	err := m.history.Remove(i)
	m.historyP.SetEntries(m.history.Entries())
	if err != nil {
		m.log.Warn("failed to remove history entry", "index", i, "error", err)
		return m.ShowFlashWarning("History not saved: " + err.Error())
	}
	return nil
}

func (m *Model) clearHistory() tea.Cmd {
	err := m.history.Clear()
	m.historyP.SetEntries(m.history.Entries())
	if err != nil {
		m.log.Warn("failed to clear history", "error", err)
		return m.ShowFlashWarning("History not saved: " + err.Error())
	}
	return m.ShowFlashInfo("History cleared")
}

// togglePanel opens kind, replacing any other panel, or closes it.
func (m *Model) togglePanel(kind ui.PanelKind) tea.Cmd {
	wasConvert := m.panels.IsOpen(ui.PanelConvert)
	m.panels.Toggle(kind)
	m.syncPanels()
	if wasConvert && !m.panels.IsOpen(ui.PanelConvert) {
		return m.rememberCategory()
	}
	return nil
}

func (m *Model) closePanel() tea.Cmd {
	return m.togglePanel(m.panels.Active())
}

// rememberCategory persists the conversion category so the panel reopens on
// it next time.
func (m *Model) rememberCategory() tea.Cmd {
	category := string(m.convertP.Category())
	if m.config.GetLastCategory() == category {
		return nil
	}
	m.config.SetLastCategory(category)
	return m.saveConfigOrFlash()
}

// copyResultCmd writes the result text to the system clipboard off the
// update loop.
func copyResultCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardCopiedMsg{Text: text, Err: clipboard.WriteText(text)}
	}
}

// pasteClipboardCmd reads the system clipboard off the update loop.
func pasteClipboardCmd() tea.Msg {
	text, err := clipboard.ReadText()
	return ClipboardPastedMsg{Text: text, Err: err}
}
