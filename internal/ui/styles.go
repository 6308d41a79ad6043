package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, rebuilt from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorBgKey       color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorResult      color.Color
	ColorFlash       color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	PanelHintStyle    lipgloss.Style
)

// Display styles
var (
	DisplayStyle       lipgloss.Style
	DisplayInputStyle  lipgloss.Style
	DisplayResultStyle lipgloss.Style
	DisplayFlashStyle  lipgloss.Style
	DisplayErrorStyle  lipgloss.Style
)

// Keypad styles
var (
	KeyDigitStyle    lipgloss.Style
	KeyOperatorStyle lipgloss.Style
	KeyEqualsStyle   lipgloss.Style
	KeyControlStyle  lipgloss.Style
)

// History panel styles
var (
	HistoryItemStyle     lipgloss.Style
	HistorySelectedStyle lipgloss.Style
	HistoryResultStyle   lipgloss.Style
	HistoryTimeStyle     lipgloss.Style
)

// Conversion panel styles
var (
	ConvertResultStyle lipgloss.Style
	ConvertErrorStyle  lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusInfoStyle    lipgloss.Style
	StatusWarningStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func init() {
	SetTheme(DefaultTheme)
}

func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	PanelHintStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	DisplayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	DisplayInputStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	DisplayResultStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorResult)

	DisplayFlashStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorFlash)

	DisplayErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorError)

	keyBase := lipgloss.NewStyle().
		Width(KeyWidth).
		Height(KeyHeight).
		Align(lipgloss.Center, lipgloss.Center)

	KeyDigitStyle = keyBase.
		Foreground(ColorText).
		Background(ColorBgKey)

	KeyOperatorStyle = keyBase.
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorSecondary)

	KeyEqualsStyle = keyBase.
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary)

	KeyControlStyle = keyBase.
		Foreground(ColorError).
		Background(ColorBgKey)

	HistoryItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	HistorySelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(currentTheme.GetBgSelected())).
		Foreground(ColorText).
		Bold(true)

	HistoryResultStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	HistoryTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ConvertResultStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorResult)

	ConvertErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(ColorInfo)

	StatusWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
