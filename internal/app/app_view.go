package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/abacus/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	kx, _ := m.keypadOrigin()
	calculator := lipgloss.JoinVertical(lipgloss.Left,
		m.display.View(),
		"",
		lipgloss.NewStyle().PaddingLeft(kx).Render(m.keypad.View()),
	)

	body := calculator
	switch m.panels.Active() {
	case ui.PanelHistory:
		body = lipgloss.JoinHorizontal(lipgloss.Top, calculator, gap(), m.historyP.View())
	case ui.PanelConvert:
		body = lipgloss.JoinHorizontal(lipgloss.Top, calculator, gap(), m.convertP.View())
	}

	body = lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}

func gap() string {
	return lipgloss.NewStyle().Width(ui.PanelGap).Render("")
}

// calculatorWidth is the width of the display, which frames the keypad.
func (m *Model) calculatorWidth() int {
	return m.keypad.Width() + ui.BorderSize + ui.PaddingSize
}

func (m *Model) contentHeight() int {
	return max(m.height-ui.HeaderHeight-ui.FooterHeight, 1)
}

// keypadOrigin is the screen cell of the keypad's top-left button.
func (m *Model) keypadOrigin() (x, y int) {
	x = (m.calculatorWidth() - m.keypad.Width()) / 2
	y = ui.HeaderHeight + m.display.Height() + 1
	return x, y
}

// panelOrigin is the screen cell of the side panel's top-left border.
func (m *Model) panelOrigin() (x, y int) {
	return m.calculatorWidth() + ui.PanelGap, ui.HeaderHeight
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.display.SetWidth(m.calculatorWidth())

	px, _ := m.panelOrigin()
	panelWidth := max(m.width-px, ui.PanelMinWidth)
	m.historyP.SetSize(panelWidth, m.contentHeight())
	m.convertP.SetSize(panelWidth, m.contentHeight())
}
