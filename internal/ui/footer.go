package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which bindings the footer shows.
type FooterMode int

const (
	FooterCalculator FooterMode = iota
	FooterHistory
	FooterConvert
	FooterHelp
)

// FlashType is the severity of a footer flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays in the footer.
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient footer message that replaces the bindings.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg drives flash expiry.
type FlashTickMsg time.Time

// FlashTick returns a command that checks flash expiry once a second.
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

var (
	calculatorBindings = []KeyBinding{
		{Key: "=", Desc: "evaluate"},
		{Key: "esc", Desc: "clear"},
		{Key: "h", Desc: "history"},
		{Key: "u", Desc: "units"},
		{Key: "t", Desc: "theme"},
		{Key: "y", Desc: "copy"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}
	historyBindings = []KeyBinding{
		{Key: "↑/↓", Desc: "select"},
		{Key: "enter", Desc: "load"},
		{Key: "d", Desc: "delete"},
		{Key: "C", Desc: "clear all"},
		{Key: "esc", Desc: "close"},
	}
	convertBindings = []KeyBinding{
		{Key: "tab", Desc: "next field"},
		{Key: "enter", Desc: "convert"},
		{Key: "ctrl+s", Desc: "swap"},
		{Key: "esc", Desc: "close"},
	}
	helpBindings = []KeyBinding{
		{Key: "esc/?", Desc: "close"},
	}
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	mode         FooterMode
	bindings     []KeyBinding
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{bindings: calculatorBindings}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetMode switches the bindings shown for the current focus.
func (f *Footer) SetMode(mode FooterMode) {
	f.mode = mode
	switch mode {
	case FooterHistory:
		f.bindings = historyBindings
	case FooterConvert:
		f.bindings = convertBindings
	case FooterHelp:
		f.bindings = helpBindings
	default:
		f.bindings = calculatorBindings
	}
}

// Mode returns the current footer mode.
func (f *Footer) Mode() FooterMode {
	return f.mode
}

// Bindings returns the bindings for the current mode.
func (f *Footer) Bindings() []KeyBinding {
	return f.bindings
}

// SetFlash shows a message for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(renderFlash(f.flashMessage))
	}

	parts := make([]string, 0, len(f.bindings))
	for _, b := range f.bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}

func renderFlash(msg *FlashMessage) string {
	var icon string
	var style lipgloss.Style
	switch msg.Type {
	case FlashError:
		icon, style = "✕", StatusErrorStyle
	case FlashWarning:
		icon, style = "⚠", StatusWarningStyle
	case FlashSuccess:
		icon, style = "✓", lipgloss.NewStyle().Foreground(ColorFlash)
	default:
		icon, style = "ℹ", StatusInfoStyle
	}
	return style.Render(icon + " " + msg.Text)
}
