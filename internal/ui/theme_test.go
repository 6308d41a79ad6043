package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []ThemeName{ThemeLight, ThemeDark, ThemeNeon}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ThemeNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCycleTheme_ReturnsToStart(t *testing.T) {
	SetTheme(DefaultTheme)
	defer SetTheme(DefaultTheme)

	seen := map[ThemeName]bool{CurrentThemeName(): true}
	for i := 0; i < 2; i++ {
		seen[CycleTheme()] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected three distinct themes, saw %v", seen)
	}
	if got := CycleTheme(); got != DefaultTheme {
		t.Errorf("third cycle = %q, want %q", got, DefaultTheme)
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		from ThemeName
		want ThemeName
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeNeon},
		{ThemeNeon, ThemeLight},
		{"unknown", ThemeLight},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.from); got != tt.want {
			t.Errorf("NextTheme(%q) = %q, want %q", tt.from, got, tt.want)
		}
	}
}

func TestSetThemeByName(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetThemeByName("neon")
	if CurrentThemeName() != ThemeNeon {
		t.Errorf("CurrentThemeName() = %q, want neon", CurrentThemeName())
	}

	SetThemeByName("solarized")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme should fall back to %q, got %q", DefaultTheme, CurrentThemeName())
	}
}

func TestIsTheme(t *testing.T) {
	for _, name := range []string{"light", "dark", "neon"} {
		if !IsTheme(name) {
			t.Errorf("IsTheme(%q) = false", name)
		}
	}
	if IsTheme("Light") || IsTheme("") {
		t.Error("IsTheme should only accept exact identifiers")
	}
}

func TestThemes_HaveIconsAndColors(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		if theme.Icon == "" || theme.Name == "" {
			t.Errorf("theme %q missing icon or name", name)
		}
		if theme.Primary == "" || theme.Bg == "" || theme.Text == "" || theme.Error == "" {
			t.Errorf("theme %q missing core colors", name)
		}
		if theme.GetBorderFocus() == "" || theme.GetBgSelected() == "" {
			t.Errorf("theme %q has no focus or selection color", name)
		}
	}
}
