package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	abacuserrors "github.com/zhubert/abacus/internal/errors"
)

var (
	// ErrIncomplete means the expression is empty or ends in an operator.
	// Callers ignore it: nothing to evaluate yet.
	ErrIncomplete = errors.New("incomplete expression")

	// ErrNotFinite means the value was infinite or NaN, e.g. division by zero.
	ErrNotFinite = errors.New("result is not a finite number")
)

// Precision is the number of fractional digits results are rounded to.
const Precision = 10

var glyphReplacer = strings.NewReplacer(
	OpMultiply, "*",
	OpDivide, "/",
	OpSubtract, "-",
)

// Evaluate computes the value of an expression built from digits, decimal
// points and the four operators, with the usual precedence and left
// associativity. Display glyphs and their ASCII forms are both accepted.
func Evaluate(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, ErrIncomplete
	}
	b := Builder{text: expr}
	if b.EndsWithOperator() || strings.ContainsAny(expr[len(expr)-1:], "+-*/") {
		return 0, ErrIncomplete
	}

	p := &parser{src: glyphReplacer.Replace(expr)}
	v, err := p.parse()
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, abacuserrors.E(abacuserrors.Op("calc.Evaluate"), abacuserrors.KindEval, ErrNotFinite)
	}
	return Round(v), nil
}

// Round rounds v to Precision fractional digits to hide float noise
// (0.1+0.2 becomes 0.3). Negative zero becomes zero.
func Round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', Precision, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return 0
	}
	return r
}

// parser is a recursive-descent parser over the ASCII grammar
//
//	expr   = term { ("+" | "-") term }
//	term   = number { ("*" | "/") number }
//	number = digit { digit } [ "." { digit } ] | "." digit { digit }
type parser struct {
	src string
	pos int
}

func (p *parser) parse() (float64, error) {
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, abacuserrors.SyntaxError(p.pos, fmt.Sprintf("unexpected %q", p.src[p.pos]))
	}
	return v, nil
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp("+-")
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.number()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp("*/")
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.number()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			left /= right
		}
	}
}

func (p *parser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	digits, dots := 0, 0
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			digits++
		} else if c == '.' && dots == 0 {
			dots++
		} else {
			break
		}
		p.pos++
	}
	if digits == 0 {
		if p.pos >= len(p.src) {
			return 0, abacuserrors.SyntaxError(p.pos, "expected number")
		}
		return 0, abacuserrors.SyntaxError(start, fmt.Sprintf("expected number, found %q", p.src[start]))
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, abacuserrors.SyntaxError(start, err.Error())
	}
	return v, nil
}

func (p *parser) peekOp(ops string) (byte, bool) {
	p.skipSpace()
	if p.pos < len(p.src) && strings.IndexByte(ops, p.src[p.pos]) >= 0 {
		return p.src[p.pos], true
	}
	return 0, false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}
