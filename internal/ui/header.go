package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// AppTitle is shown at the left of the header.
const AppTitle = "abacus"

// Header represents the top header bar
type Header struct {
	width  int
	status string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus sets the muted text shown before the theme name, such as the
// open panel.
func (h *Header) SetStatus(status string) {
	h.status = status
}

// View renders the header: theme icon and title on the left, status and
// theme name on the right.
func (h *Header) View() string {
	theme := CurrentTheme()
	titleText := " " + theme.Icon + " " + AppTitle

	rightText := theme.Name + " "
	if h.status != "" {
		rightText = h.status + " · " + rightText
	}

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, len([]rune(titleText)), h.status)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background that fades from the
// primary color to the theme background. The first boldRunes runes are bold;
// status, when present, is drawn muted.
func (h *Header) renderGradient(content string, boldRunes int, status string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.TextInverse)
	mutedColor := lipgloss.Color(theme.TextMuted)

	statusStart, statusEnd := -1, -1
	if status != "" {
		if idx := strings.LastIndex(content, status); idx >= 0 {
			statusStart = len([]rune(content[:idx]))
			statusEnd = statusStart + len([]rune(status))
		}
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < boldRunes)

		// Past the midpoint the background is close to Bg, so inverse text
		// would vanish.
		switch {
		case i >= statusStart && i < statusEnd:
			style = style.Foreground(mutedColor)
		case t > 0.5:
			style = style.Foreground(lipgloss.Color(theme.Text))
		default:
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
