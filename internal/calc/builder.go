// Package calc holds the calculator core: the expression builder that
// enforces token-adjacency rules, a small recursive-descent evaluator for
// the four-operator grammar, and the Calculator that ties them to a result.
package calc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Display operator glyphs. The builder only ever stores these.
const (
	OpAdd      = "+"
	OpSubtract = "−" // U+2212
	OpMultiply = "×" // U+00D7
	OpDivide   = "÷" // U+00F7
	Decimal    = "."
)

const operatorGlyphs = OpAdd + OpSubtract + OpMultiply + OpDivide

// IsOperator reports whether s is one of the four display operator glyphs.
func IsOperator(s string) bool {
	switch s {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

func isOperatorRune(r rune) bool {
	return strings.ContainsRune(operatorGlyphs, r)
}

// Normalize maps a token to its display form. ASCII operators become glyphs;
// digits, the decimal point and glyphs pass through. Anything else is
// rejected.
func Normalize(token string) (string, bool) {
	switch token {
	case OpAdd:
		return OpAdd, true
	case "-", OpSubtract:
		return OpSubtract, true
	case "*", OpMultiply:
		return OpMultiply, true
	case "/", OpDivide:
		return OpDivide, true
	case Decimal:
		return Decimal, true
	}
	if len(token) == 1 && token[0] >= '0' && token[0] <= '9' {
		return token, true
	}
	return "", false
}

// Builder accumulates key and button input into an expression string.
type Builder struct {
	text string
}

// String returns the expression as displayed.
func (b *Builder) String() string {
	return b.text
}

// IsEmpty reports whether nothing has been entered.
func (b *Builder) IsEmpty() bool {
	return b.text == ""
}

// EndsWithOperator reports whether the last character is an operator glyph.
func (b *Builder) EndsWithOperator() bool {
	r, _ := utf8.DecodeLastRuneInString(b.text)
	return b.text != "" && isOperatorRune(r)
}

// Append adds a token. It returns false when the token is rejected: an
// operator on an empty expression, a second decimal point in the current
// number, or an unknown token. An operator after a trailing operator
// replaces it.
func (b *Builder) Append(token string) bool {
	tok, ok := Normalize(token)
	if !ok {
		return false
	}

	if IsOperator(tok) {
		if b.text == "" {
			return false
		}
		if last, size := utf8.DecodeLastRuneInString(b.text); isOperatorRune(last) {
			if string(last) == tok {
				return false
			}
			b.text = b.text[:len(b.text)-size] + tok
			return true
		}
	}

	if tok == Decimal && strings.Contains(b.currentRun(), Decimal) {
		return false
	}

	b.text += tok
	return true
}

// AppendString feeds every rune of s through Append, skipping whitespace.
// It returns how many tokens were accepted.
func (b *Builder) AppendString(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if b.Append(string(r)) {
			n++
		}
	}
	return n
}

// currentRun returns the numeric run after the most recent operator.
func (b *Builder) currentRun() string {
	i := strings.LastIndexAny(b.text, operatorGlyphs)
	if i < 0 {
		return b.text
	}
	_, size := utf8.DecodeRuneInString(b.text[i:])
	return b.text[i+size:]
}

// Backspace removes the last character. It is a no-op on an empty expression.
func (b *Builder) Backspace() bool {
	if b.text == "" {
		return false
	}
	last := 0
	gr := uniseg.NewGraphemes(b.text)
	for gr.Next() {
		last, _ = gr.Positions()
	}
	b.text = b.text[:last]
	return true
}

// Clear empties the expression.
func (b *Builder) Clear() {
	b.text = ""
}

// Load replaces the expression verbatim, e.g. with a history entry's input.
func (b *Builder) Load(text string) {
	b.text = text
}
