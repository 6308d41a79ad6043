package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/abacus/internal/calc"
)

// Button values that are not expression tokens.
const (
	ButtonClear     = "C"
	ButtonBackspace = "←"
	ButtonEquals    = "="
)

// ButtonKind groups buttons that share a style.
type ButtonKind int

const (
	ButtonDigit ButtonKind = iota
	ButtonOperator
	ButtonControl
	ButtonEvaluate
)

// Button is one keypad key. Value is what pressing it sends: an expression
// token, or one of the Button* control values.
type Button struct {
	Label string
	Value string
	Kind  ButtonKind
	Row   int
	Col   int
	Span  int
}

// Bounds returns the button's cell rectangle relative to the keypad origin.
func (b Button) Bounds() uv.Rectangle {
	x := b.Col * (KeyWidth + KeyColumnGap)
	y := b.Row * (KeyHeight + KeyRowGap)
	return uv.Rect(x, y, b.width(), KeyHeight)
}

func (b Button) width() int {
	span := max(b.Span, 1)
	return span*KeyWidth + (span-1)*KeyColumnGap
}

func (b Button) style() lipgloss.Style {
	switch b.Kind {
	case ButtonOperator:
		return KeyOperatorStyle
	case ButtonControl:
		return KeyControlStyle
	case ButtonEvaluate:
		return KeyEqualsStyle
	}
	return KeyDigitStyle
}

func digit(label string, row, col int) Button {
	return Button{Label: label, Value: label, Kind: ButtonDigit, Row: row, Col: col, Span: 1}
}

func operator(op string, row int) Button {
	return Button{Label: op, Value: op, Kind: ButtonOperator, Row: row, Col: 3, Span: 1}
}

// DefaultButtons is the keypad layout, row by row.
var DefaultButtons = []Button{
	{Label: ButtonClear, Value: ButtonClear, Kind: ButtonControl, Row: 0, Col: 0, Span: 2},
	{Label: ButtonBackspace, Value: ButtonBackspace, Kind: ButtonControl, Row: 0, Col: 2, Span: 1},
	operator(calc.OpDivide, 0),

	digit("7", 1, 0), digit("8", 1, 1), digit("9", 1, 2), operator(calc.OpMultiply, 1),
	digit("4", 2, 0), digit("5", 2, 1), digit("6", 2, 2), operator(calc.OpSubtract, 2),
	digit("1", 3, 0), digit("2", 3, 1), digit("3", 3, 2), operator(calc.OpAdd, 3),

	{Label: "0", Value: "0", Kind: ButtonDigit, Row: 4, Col: 0, Span: 2},
	digit(calc.Decimal, 4, 2),
	{Label: ButtonEquals, Value: ButtonEquals, Kind: ButtonEvaluate, Row: 4, Col: 3, Span: 1},
}

// Keypad renders the button grid and maps clicks back to buttons.
type Keypad struct {
	buttons []Button
	rows    int
}

// NewKeypad creates a keypad with the default layout.
func NewKeypad() *Keypad {
	k := &Keypad{buttons: DefaultButtons}
	for _, b := range k.buttons {
		k.rows = max(k.rows, b.Row+1)
	}
	return k
}

// Buttons returns the layout.
func (k *Keypad) Buttons() []Button {
	return k.buttons
}

// Width returns the rendered width in cells.
func (k *Keypad) Width() int {
	return KeypadColumns*KeyWidth + (KeypadColumns-1)*KeyColumnGap
}

// Height returns the rendered height in lines.
func (k *Keypad) Height() int {
	return k.rows*KeyHeight + (k.rows-1)*KeyRowGap
}

// ButtonAt returns the button under (x, y), relative to the keypad origin.
// Gaps between buttons hit nothing.
func (k *Keypad) ButtonAt(x, y int) (Button, bool) {
	p := uv.Pos(x, y)
	for _, b := range k.buttons {
		if p.In(b.Bounds()) {
			return b, true
		}
	}
	return Button{}, false
}

// View renders the grid.
func (k *Keypad) View() string {
	gap := strings.Repeat(" ", KeyColumnGap)
	rows := make([]string, 0, k.rows*2)
	for r := 0; r < k.rows; r++ {
		var cells []string
		for _, b := range k.buttons {
			if b.Row != r {
				continue
			}
			if len(cells) > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, b.style().Width(b.width()).Render(b.Label))
		}
		if r > 0 {
			for i := 0; i < KeyRowGap; i++ {
				rows = append(rows, "")
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
