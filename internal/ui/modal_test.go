package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Fatal("new modal should be hidden")
	}
	if m.View(80, 24) != "" {
		t.Error("hidden modal renders nothing")
	}

	m.Show(NewHelpState())
	if !m.IsVisible() {
		t.Fatal("Show should make the modal visible")
	}
	m.SetError("oops")
	if m.GetError() != "oops" {
		t.Errorf("GetError() = %q", m.GetError())
	}

	view := stripANSI(m.View(80, 40))
	if !strings.Contains(view, "Keyboard Shortcuts") || !strings.Contains(view, "oops") {
		t.Errorf("modal view missing title or error:\n%s", view)
	}

	m.Hide()
	if m.IsVisible() || m.GetError() != "" {
		t.Error("Hide should clear state and error")
	}
}

func TestHelpSections_CoverEveryPanel(t *testing.T) {
	sections := HelpSections()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	var keys []string
	for _, s := range sections {
		if len(s.Shortcuts) == 0 {
			t.Errorf("section %q is empty", s.Title)
		}
		for _, sc := range s.Shortcuts {
			keys = append(keys, sc.Key)
		}
	}
	joined := strings.Join(keys, " ")
	for _, want := range []string{"=", "h", "u", "t", "ctrl+s", "enter", "d"} {
		if !strings.Contains(joined, want) {
			t.Errorf("help is missing key %q", want)
		}
	}
}

func TestHelpState_Navigation(t *testing.T) {
	state := NewHelpStateFromSections([]HelpSection{
		{Title: "Test", Shortcuts: []HelpShortcut{
			{Key: "a", Desc: "action a"},
			{Key: "b", Desc: "action b"},
		}},
	})

	sc, ok := state.SelectedShortcut()
	if !ok || sc.Key != "a" {
		t.Fatalf("initial selection = %+v, %v, want the first shortcut", sc, ok)
	}

	next, _ := state.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	sc, ok = next.(*HelpState).SelectedShortcut()
	if !ok || sc.Key != "b" {
		t.Errorf("after down = %+v, %v, want b", sc, ok)
	}
	if state.IsFiltering() {
		t.Error("should not be filtering")
	}
	if state.Help() == "" || state.Title() != "Keyboard Shortcuts" {
		t.Error("unexpected title or help")
	}
}
