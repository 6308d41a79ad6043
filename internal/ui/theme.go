package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string
	// Icon is shown in the header and on the theme toggle
	Icon string

	// Primary is the main accent color (display border, header, focus)
	Primary string
	// Secondary is the secondary accent (operator keys, footer keys)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgKey      string // Digit key background
	BgSelected string // Selected history row (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Result  string // Result line
	Flash   string // Result line right after an evaluation
	Warning string // Footer warnings
	Error   string // Error marker, invalid input
	Info    string // Footer info messages

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
	ThemeNeon  ThemeName = "neon"
)

// DefaultTheme is the theme used on first run
const DefaultTheme = ThemeLight

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeLight: {
		Name:        "Light",
		Icon:        "🌞",
		Primary:     "#2563EB",
		Secondary:   "#F97316",
		Bg:          "#F9FAFB",
		BgKey:       "#E5E7EB",
		BgSelected:  "#DBEAFE",
		Text:        "#111827",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Result:      "#111827",
		Flash:       "#16A34A",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#2563EB",
		Border:      "#D1D5DB",
	},
	ThemeDark: {
		Name:        "Dark",
		Icon:        "🌙",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		BgKey:       "#374151",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Result:      "#F9FAFB",
		Flash:       "#4ADE80",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Border:      "#4B5563",
	},
	ThemeNeon: {
		Name:        "Neon",
		Icon:        "💡",
		Primary:     "#FF00FF",
		Secondary:   "#00FFFF",
		Bg:          "#0D0221",
		BgKey:       "#1A0B3D",
		BgSelected:  "#3D0F6B",
		Text:        "#E0E0FF",
		TextMuted:   "#8A7FB5",
		TextInverse: "#0D0221",
		Result:      "#39FF14",
		Flash:       "#FFFF00",
		Warning:     "#FFB000",
		Error:       "#FF3860",
		Info:        "#00FFFF",
		Border:      "#4A1F8C",
		BorderFocus: "#00FFFF",
	},
}

// ThemeNames returns every theme name in cycle order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeLight, ThemeDark, ThemeNeon}
}

// IsTheme reports whether name is a built-in theme
func IsTheme(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// GetTheme returns a theme by name, defaulting to Light if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// NextTheme returns the theme after name in cycle order, wrapping around.
// Unknown names restart the cycle.
func NextTheme(name ThemeName) ThemeName {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CycleTheme activates the next theme and returns its name
func CycleTheme() ThemeName {
	next := NextTheme(currentThemeName)
	SetTheme(next)
	return next
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgKey = lipgloss.Color(t.BgKey)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorResult = lipgloss.Color(t.Result)
	ColorFlash = lipgloss.Color(t.Flash)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)

	buildStyles()
}
