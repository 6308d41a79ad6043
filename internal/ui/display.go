package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// ResultFlashDoneMsg ends the result highlight started by Display.Flash.
type ResultFlashDoneMsg struct {
	seq int
}

// Display is the two-line readout: the expression being built and the last
// result.
type Display struct {
	width    int
	input    string
	result   string
	failed   bool
	flashing bool
	flashSeq int
}

// NewDisplay creates a display showing an empty input and a zero result.
func NewDisplay() *Display {
	return &Display{result: "0"}
}

// SetWidth sets the outer width, borders included.
func (d *Display) SetWidth(width int) {
	d.width = width
}

// Width returns the outer width.
func (d *Display) Width() int {
	return d.width
}

// Height returns the rendered height in lines.
func (d *Display) Height() int {
	return DisplayLines + BorderSize
}

// SetInput sets the expression line.
func (d *Display) SetInput(input string) {
	d.input = input
}

// SetResult sets the result line. failed renders it as an error.
func (d *Display) SetResult(result string, failed bool) {
	d.result = result
	d.failed = failed
}

// Flash highlights the result line and returns the command that ends the
// highlight. A newer flash supersedes an older one.
func (d *Display) Flash() tea.Cmd {
	d.flashing = true
	d.flashSeq++
	seq := d.flashSeq
	return tea.Tick(ResultFlashMillis*time.Millisecond, func(time.Time) tea.Msg {
		return ResultFlashDoneMsg{seq: seq}
	})
}

// EndFlash clears the highlight if msg belongs to the latest flash.
func (d *Display) EndFlash(msg ResultFlashDoneMsg) {
	if msg.seq == d.flashSeq {
		d.flashing = false
	}
}

// IsFlashing reports whether the result line is highlighted.
func (d *Display) IsFlashing() bool {
	return d.flashing
}

// View renders the display box.
func (d *Display) View() string {
	inner := d.width - BorderSize - PaddingSize
	if inner < 1 {
		inner = 1
	}

	// Non-breaking space keeps the line height when the input is empty.
	input := d.input
	if input == "" {
		input = " "
	}
	input = tail(input, inner)

	resultStyle := DisplayResultStyle
	switch {
	case d.failed:
		resultStyle = DisplayErrorStyle
	case d.flashing:
		resultStyle = DisplayFlashStyle
	}
	result := tail(d.result, inner)

	right := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right)
	content := lipgloss.JoinVertical(lipgloss.Right,
		right.Render(DisplayInputStyle.Render(input)),
		right.Render(resultStyle.Render(result)),
	)
	return DisplayStyle.Width(d.width).Render(content)
}

// tail keeps the rightmost width cells of s, marking the cut with an
// ellipsis. The end of an expression is where typing happens.
func tail(s string, width int) string {
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	return ansi.TruncateLeft(s, w-width+1, "…")
}
