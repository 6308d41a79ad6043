package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/abacus/internal/calc"
)

func TestKeypad_Size(t *testing.T) {
	k := NewKeypad()
	if k.Width() != 31 {
		t.Errorf("Width() = %d, want 31", k.Width())
	}
	if k.Height() != 9 {
		t.Errorf("Height() = %d, want 9", k.Height())
	}
}

func TestKeypad_ButtonAt(t *testing.T) {
	k := NewKeypad()

	tests := []struct {
		name   string
		x, y   int
		want   string
		wantOK bool
	}{
		{"clear left edge", 0, 0, ButtonClear, true},
		{"clear spans two columns", 14, 0, ButtonClear, true},
		{"backspace", 16, 0, ButtonBackspace, true},
		{"divide", 30, 0, calc.OpDivide, true},
		{"row gap", 3, 1, "", false},
		{"column gap", 7, 2, "", false},
		{"seven", 0, 2, "7", true},
		{"multiply", 24, 2, calc.OpMultiply, true},
		{"subtract", 24, 4, calc.OpSubtract, true},
		{"add", 24, 6, calc.OpAdd, true},
		{"zero spans two columns", 10, 8, "0", true},
		{"decimal", 16, 8, calc.Decimal, true},
		{"equals", 30, 8, ButtonEquals, true},
		{"outside right", 31, 0, "", false},
		{"outside below", 0, 9, "", false},
		{"negative", -1, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := k.ButtonAt(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("ButtonAt(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
			if ok && b.Value != tt.want {
				t.Errorf("ButtonAt(%d,%d) = %q, want %q", tt.x, tt.y, b.Value, tt.want)
			}
		})
	}
}

func TestKeypad_EveryButtonHitsItself(t *testing.T) {
	k := NewKeypad()
	for _, b := range k.Buttons() {
		r := b.Bounds()
		got, ok := k.ButtonAt(r.Min.X, r.Min.Y)
		if !ok || got.Value != b.Value {
			t.Errorf("button %q at %v resolved to %q, %v", b.Label, r.Min, got.Value, ok)
		}
		got, ok = k.ButtonAt(r.Max.X-1, r.Max.Y-1)
		if !ok || got.Value != b.Value {
			t.Errorf("button %q bottom-right resolved to %q, %v", b.Label, got.Value, ok)
		}
	}
}

func TestKeypad_ValuesAreTokensOrControls(t *testing.T) {
	for _, b := range DefaultButtons {
		switch b.Value {
		case ButtonClear, ButtonBackspace, ButtonEquals:
			continue
		}
		if tok, ok := calc.Normalize(b.Value); !ok || tok != b.Value {
			t.Errorf("button %q value is not an expression token", b.Label)
		}
	}
}

func TestKeypad_View(t *testing.T) {
	view := stripANSI(NewKeypad().View())
	for _, label := range []string{"7", "÷", "×", "−", "+", "=", "C", "←"} {
		if !strings.Contains(view, label) {
			t.Errorf("keypad view missing %q", label)
		}
	}
}
