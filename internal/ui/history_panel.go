package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/abacus/internal/history"
)

// historyHeaderLines is the title plus the blank line under it.
const historyHeaderLines = 2

// HistoryPanel lists past calculations, newest first, with a selection.
type HistoryPanel struct {
	width    int
	height   int
	entries  []history.Entry
	selected int
}

func NewHistoryPanel() *HistoryPanel {
	return &HistoryPanel{}
}

// SetSize sets the outer size, borders included.
func (p *HistoryPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetEntries replaces the listed entries and keeps the selection in range.
func (p *HistoryPanel) SetEntries(entries []history.Entry) {
	p.entries = entries
	p.clampSelection()
}

func (p *HistoryPanel) clampSelection() {
	if p.selected >= len(p.entries) {
		p.selected = len(p.entries) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// MoveUp selects the previous (newer) entry.
func (p *HistoryPanel) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown selects the next (older) entry.
func (p *HistoryPanel) MoveDown() {
	if p.selected < len(p.entries)-1 {
		p.selected++
	}
}

// Select sets the selection if index is in range.
func (p *HistoryPanel) Select(index int) {
	if index >= 0 && index < len(p.entries) {
		p.selected = index
	}
}

// Selected returns the selected index, or false when the list is empty.
func (p *HistoryPanel) Selected() (int, bool) {
	if len(p.entries) == 0 {
		return 0, false
	}
	return p.selected, true
}

// SelectedEntry returns the selected entry.
func (p *HistoryPanel) SelectedEntry() (history.Entry, bool) {
	i, ok := p.Selected()
	if !ok {
		return history.Entry{}, false
	}
	return p.entries[i], true
}

// RowAt maps a line offset inside the panel (0 is the top border) to an
// entry index.
func (p *HistoryPanel) RowAt(y int) (int, bool) {
	line := y - 1 - historyHeaderLines
	if line < 0 || line >= p.visibleRows() {
		return 0, false
	}
	idx := line - p.scrollOffset()
	if idx >= len(p.entries) {
		return 0, false
	}
	return idx, true
}

// visibleRows is how many entries fit inside the borders under the header.
func (p *HistoryPanel) visibleRows() int {
	rows := p.height - BorderSize - historyHeaderLines
	if rows < 1 {
		return 1
	}
	return rows
}

// scrollOffset is negative when the list is scrolled, so RowAt and View
// agree on which entry is drawn on which line.
func (p *HistoryPanel) scrollOffset() int {
	rows := p.visibleRows()
	if p.selected < rows {
		return 0
	}
	return rows - 1 - p.selected
}

// View renders the panel.
func (p *HistoryPanel) View() string {
	inner := max(p.width-BorderSize-PaddingSize, 1)

	title := PanelTitleStyle.Render(fmt.Sprintf("History (%d/%d)", len(p.entries), history.MaxEntries))
	lines := []string{title, ""}

	if len(p.entries) == 0 {
		lines = append(lines, PanelHintStyle.Render("No calculations yet"))
	} else {
		start := -p.scrollOffset()
		end := min(start+p.visibleRows(), len(p.entries))
		for i := start; i < end; i++ {
			lines = append(lines, p.renderRow(p.entries[i], i == p.selected, inner))
		}
	}

	style := PanelFocusedStyle
	if p.height > 0 {
		style = style.Height(p.height)
	}
	return style.Width(p.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderRow lays out "input = result" on the left and the time on the right,
// truncating the calculation when the row is too narrow.
func (p *HistoryPanel) renderRow(e history.Entry, selected bool, width int) string {
	stamp := e.Timestamp
	calcWidth := width - runewidth.StringWidth(stamp) - 1
	if calcWidth < 8 {
		stamp = ""
		calcWidth = width
	}

	calcText := ansi.Truncate(e.Input+" = "+e.Result.String(), calcWidth, "…")
	row := runewidth.FillRight(calcText, calcWidth)
	if stamp != "" {
		row += " " + stamp
	}

	if selected {
		return HistorySelectedStyle.Width(width).Render(row)
	}

	// Colour the result and timestamp separately when unselected.
	if eq := strings.LastIndex(row, " = "); eq >= 0 && stamp != "" {
		head := row[:eq+3]
		rest := strings.TrimSuffix(row[eq+3:], stamp)
		return HistoryItemStyle.Render(head) + HistoryResultStyle.Render(rest) + HistoryTimeStyle.Render(stamp)
	}
	return HistoryItemStyle.Render(row)
}
