package calc

import "errors"

// Calculator is the display state: the expression being composed and the
// last computed result. The zero value is ready to use.
type Calculator struct {
	builder   Builder
	result    Result
	hasResult bool
}

// New returns an empty Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Input returns the current expression.
func (c *Calculator) Input() string {
	return c.builder.String()
}

// Result returns the last result and whether one exists.
func (c *Calculator) Result() (Result, bool) {
	return c.result, c.hasResult
}

// ResultText is what the result surface shows: the last result, or "0".
func (c *Calculator) ResultText() string {
	if !c.hasResult {
		return "0"
	}
	return c.result.String()
}

// Append adds a token to the expression. See Builder.Append.
func (c *Calculator) Append(token string) bool {
	return c.builder.Append(token)
}

// Paste appends every acceptable character of text.
func (c *Calculator) Paste(text string) int {
	return c.builder.AppendString(text)
}

// Backspace removes the last character of the expression.
func (c *Calculator) Backspace() bool {
	return c.builder.Backspace()
}

// Clear resets both the expression and the result.
func (c *Calculator) Clear() {
	c.builder.Clear()
	c.result = Result{}
	c.hasResult = false
}

// LoadEntry copies a past expression back into the input without
// recomputing it.
func (c *Calculator) LoadEntry(input string) {
	c.builder.Load(input)
}

// Evaluate runs the current expression. An incomplete expression returns
// ErrIncomplete and changes nothing. Any other failure stores the error
// marker and returns the error. On success the result is stored and returned
// so the caller can record it.
func (c *Calculator) Evaluate() (Result, error) {
	v, err := Evaluate(c.builder.String())
	if errors.Is(err, ErrIncomplete) {
		return Result{}, err
	}
	if err != nil {
		c.result = Failure()
		c.hasResult = true
		return c.result, err
	}
	c.result = Number(v)
	c.hasResult = true
	return c.result, nil
}
