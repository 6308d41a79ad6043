package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/abacus/internal/calc"
	"github.com/zhubert/abacus/internal/ui"
)

func teaSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func TestMouse_KeypadActsLikeKeys(t *testing.T) {
	m := testModelWithSize(t, 100, 30)

	for _, v := range []string{"7", calc.OpAdd, "8", calc.Decimal, "5"} {
		clickButton(t, m, v)
	}
	if got := m.Calculator().Input(); got != "7+8.5" {
		t.Fatalf("Input() = %q, want 7+8.5", got)
	}

	clickButton(t, m, ui.ButtonBackspace)
	clickButton(t, m, ui.ButtonBackspace)
	clickButton(t, m, ui.ButtonEquals)
	if got := m.Calculator().ResultText(); got != "15" {
		t.Errorf("ResultText() = %q, want 15", got)
	}
	if m.history.Len() != 1 {
		t.Error("clicked evaluation should be recorded")
	}

	clickButton(t, m, ui.ButtonClear)
	if m.Calculator().Input() != "" || m.Calculator().ResultText() != "0" {
		t.Error("C should clear")
	}
}

func TestMouse_MissesAndOtherButtons(t *testing.T) {
	m := testModelWithSize(t, 100, 30)
	kx, ky := m.keypadOrigin()

	// Row gap between the first and second rows.
	m.Update(mouseClick(kx, ky+1))
	// Header.
	m.Update(mouseClick(0, 0))
	// Right button on "7".
	m.Update(tea.MouseClickMsg{X: kx, Y: ky + 2, Button: tea.MouseRight})

	if m.Calculator().Input() != "" {
		t.Errorf("stray clicks changed input to %q", m.Calculator().Input())
	}
}

func TestMouse_IgnoredUnderModal(t *testing.T) {
	m := testModelWithSize(t, 100, 30)
	m = sendKey(m, "?")
	clickButton(t, m, "7")
	if m.Calculator().Input() != "" {
		t.Error("clicks should not reach the keypad under a modal")
	}
}
