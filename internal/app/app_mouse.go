package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/abacus/internal/ui"
)

// handleMouseClick maps a left click to a keypad button or a history row.
// Coordinates are translated into each component's own frame first.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft || m.modal.IsVisible() {
		return nil
	}

	kx, ky := m.keypadOrigin()
	if b, ok := m.keypad.ButtonAt(msg.X-kx, msg.Y-ky); ok {
		m.log.Debug("keypad click", "button", b.Label)
		return m.pressButton(b)
	}

	if m.panels.IsOpen(ui.PanelHistory) {
		px, py := m.panelOrigin()
		if msg.X < px {
			return nil
		}
		if i, ok := m.historyP.RowAt(msg.Y - py); ok {
			m.historyP.Select(i)
			return m.loadSelectedHistory()
		}
	}
	return nil
}
