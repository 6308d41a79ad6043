package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/zhubert/abacus/internal/calc"
	"github.com/zhubert/abacus/internal/history"
)

func makeEntries(n int) []history.Entry {
	entries := make([]history.Entry, n)
	for i := range entries {
		entries[i] = history.Entry{
			Input:     fmt.Sprintf("%d+1", i),
			Result:    calc.Number(float64(i + 1)),
			Timestamp: "3:09:26 PM",
		}
	}
	return entries
}

func TestHistoryPanel_Empty(t *testing.T) {
	p := NewHistoryPanel()
	p.SetSize(40, 10)

	if _, ok := p.Selected(); ok {
		t.Error("empty panel has no selection")
	}
	if _, ok := p.RowAt(3); ok {
		t.Error("empty panel has no rows")
	}
	view := stripANSI(p.View())
	if !strings.Contains(view, "No calculations yet") || !strings.Contains(view, "History (0/10)") {
		t.Errorf("unexpected empty view: %q", view)
	}
}

func TestHistoryPanel_Selection(t *testing.T) {
	p := NewHistoryPanel()
	p.SetSize(40, 20)
	p.SetEntries(makeEntries(3))

	if i, ok := p.Selected(); !ok || i != 0 {
		t.Fatalf("Selected() = %d, %v, want 0", i, ok)
	}
	p.MoveUp()
	if i, _ := p.Selected(); i != 0 {
		t.Errorf("MoveUp at the top moved to %d", i)
	}
	p.MoveDown()
	p.MoveDown()
	p.MoveDown()
	if i, _ := p.Selected(); i != 2 {
		t.Errorf("MoveDown should stop at the last entry, got %d", i)
	}

	e, ok := p.SelectedEntry()
	if !ok || e.Input != "2+1" {
		t.Errorf("SelectedEntry() = %+v, %v", e, ok)
	}

	// Shrinking the list pulls the selection back in range.
	p.SetEntries(makeEntries(1))
	if i, _ := p.Selected(); i != 0 {
		t.Errorf("selection after shrink = %d, want 0", i)
	}

	p.Select(5)
	if i, _ := p.Selected(); i != 0 {
		t.Errorf("out of range Select changed selection to %d", i)
	}
}

func TestHistoryPanel_RowAt(t *testing.T) {
	p := NewHistoryPanel()
	// Three visible rows: height minus borders minus title and blank line.
	p.SetSize(40, 7)
	p.SetEntries(makeEntries(5))

	tests := []struct {
		y      int
		want   int
		wantOK bool
	}{
		{0, 0, false}, // border
		{1, 0, false}, // title
		{2, 0, false}, // blank
		{3, 0, true},
		{4, 1, true},
		{5, 2, true},
		{6, 0, false}, // bottom border
	}
	for _, tt := range tests {
		got, ok := p.RowAt(tt.y)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("RowAt(%d) = %d, %v, want %d, %v", tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHistoryPanel_RowAtScrolled(t *testing.T) {
	p := NewHistoryPanel()
	p.SetSize(40, 7)
	p.SetEntries(makeEntries(5))
	p.Select(4)

	// The selection sits on the last visible line.
	if got, ok := p.RowAt(5); !ok || got != 4 {
		t.Errorf("RowAt(5) = %d, %v, want 4", got, ok)
	}
	if got, ok := p.RowAt(3); !ok || got != 2 {
		t.Errorf("RowAt(3) = %d, %v, want 2", got, ok)
	}

	view := stripANSI(p.View())
	if strings.Contains(view, "0+1") {
		t.Error("scrolled view should not show the first entry")
	}
	if !strings.Contains(view, "4+1 = 5") {
		t.Errorf("scrolled view should show the selected entry: %q", view)
	}
}

func TestHistoryPanel_View(t *testing.T) {
	p := NewHistoryPanel()
	p.SetSize(50, 20)
	entries := makeEntries(2)
	entries[1].Result = calc.Failure()
	p.SetEntries(entries)

	view := stripANSI(p.View())
	for _, want := range []string{"History (2/10)", "0+1 = 1", "1+1 = Error", "3:09:26 PM"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHistoryPanel_NarrowDropsTimestamp(t *testing.T) {
	p := NewHistoryPanel()
	row := stripANSI(p.renderRow(makeEntries(1)[0], false, 12))
	if strings.Contains(row, "PM") {
		t.Errorf("narrow row should drop the timestamp: %q", row)
	}
	if !strings.Contains(row, "0+1 = 1") {
		t.Errorf("narrow row lost the calculation: %q", row)
	}
}
