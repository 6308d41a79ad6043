// Package convert maps a value between units of one category. Length,
// weight and currency use factor tables relative to a base unit;
// temperature uses explicit formulas.
package convert

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	abacuserrors "github.com/zhubert/abacus/internal/errors"
)

// Category is a conversion domain with its own unit set.
type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Temperature Category = "temperature"
	Currency    Category = "currency"
)

// ErrInvalidValue is returned by ParseValue for non-numeric input.
var ErrInvalidValue = errors.New("value is not a number")

// InvalidValueMessage is shown inline in the conversion panel when the value
// does not parse.
const InvalidValueMessage = "Enter a valid number"

// unitFactor is a unit and its multiplier relative to the category base unit.
type unitFactor struct {
	unit   string
	factor float64
}

// Factor tables, in display order. The first unit of each linear category
// is its base unit.
var linearTables = map[Category][]unitFactor{
	Length: {
		{"meters", 1},
		{"feet", 3.28084},
		{"inches", 39.3701},
		{"cm", 100},
	},
	Weight: {
		{"kg", 1},
		{"lbs", 2.20462},
		{"oz", 35.274},
	},
	Currency: {
		{"usd", 1},
		{"eur", 0.85},
		{"gbp", 0.73},
		{"jpy", 110.0},
	},
}

// Temperature units.
const (
	Celsius    = "celsius"
	Fahrenheit = "fahrenheit"
	Kelvin     = "kelvin"
)

var temperatureUnits = []string{Celsius, Fahrenheit, Kelvin}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Length, Weight, Temperature, Currency}
}

// Units returns the units of a category in display order, or nil if the
// category is unknown.
func Units(category Category) []string {
	if category == Temperature {
		return slices.Clone(temperatureUnits)
	}
	table, ok := linearTables[category]
	if !ok {
		return nil
	}
	units := make([]string, len(table))
	for i, uf := range table {
		units[i] = uf.unit
	}
	return units
}

// HasUnit reports whether unit belongs to category.
func HasUnit(category Category, unit string) bool {
	return slices.Contains(Units(category), unit)
}

// DefaultPair returns the first two units of a category so a fresh panel
// starts with distinct from and to units.
func DefaultPair(category Category) (from, to string) {
	units := Units(category)
	switch len(units) {
	case 0:
		return "", ""
	case 1:
		return units[0], units[0]
	}
	return units[0], units[1]
}

// Request is one conversion.
type Request struct {
	Category Category
	From     string
	To       string
	Value    float64
}

// Swapped returns the request with From and To exchanged.
func (r Request) Swapped() Request {
	r.From, r.To = r.To, r.From
	return r
}

// Convert maps req.Value from req.From to req.To. Unknown categories and
// units are rejected.
func Convert(req Request) (float64, error) {
	if req.Category == Temperature {
		return convertTemperature(req.From, req.To, req.Value)
	}

	table, ok := linearTables[req.Category]
	if !ok {
		return 0, abacuserrors.UnknownCategory(string(req.Category))
	}
	from, ok := factorOf(table, req.From)
	if !ok {
		return 0, abacuserrors.UnknownUnit(string(req.Category), req.From)
	}
	to, ok := factorOf(table, req.To)
	if !ok {
		return 0, abacuserrors.UnknownUnit(string(req.Category), req.To)
	}
	return req.Value / from * to, nil
}

func factorOf(table []unitFactor, unit string) (float64, bool) {
	for _, uf := range table {
		if uf.unit == unit {
			return uf.factor, true
		}
	}
	return 0, false
}

// Kelvin goes through Celsius.
func convertTemperature(from, to string, v float64) (float64, error) {
	for _, u := range []string{from, to} {
		if !slices.Contains(temperatureUnits, u) {
			return 0, abacuserrors.UnknownUnit(string(Temperature), u)
		}
	}
	if from == to {
		return v, nil
	}
	if from == Celsius && to == Fahrenheit {
		return v*9/5 + 32, nil
	}
	if from == Fahrenheit && to == Celsius {
		return (v - 32) * 5 / 9, nil
	}

	var c float64
	switch from {
	case Celsius:
		c = v
	case Fahrenheit:
		c = (v - 32) * 5 / 9
	case Kelvin:
		c = v - 273.15
	}
	switch to {
	case Fahrenheit:
		return c*9/5 + 32, nil
	case Kelvin:
		return c + 273.15, nil
	}
	return c, nil
}

// ParseValue reads the panel's value field. Only finite decimal numbers are
// accepted; NaN, infinities and hex floats are invalid.
func ParseValue(text string) (float64, error) {
	invalid := abacuserrors.E(abacuserrors.Op("convert.ParseValue"), abacuserrors.KindInvalid, ErrInvalidValue)

	text = strings.TrimSpace(text)
	if strings.IndexFunc(text, func(r rune) bool { return !strings.ContainsRune("0123456789.+-eE", r) }) >= 0 {
		return 0, invalid
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid
	}
	return v, nil
}

// FormatValue renders a converted value with four decimal places.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Format renders "<value> <from> = <result> <to>".
func Format(req Request, result float64) string {
	return fmt.Sprintf("%s %s = %s %s",
		strconv.FormatFloat(req.Value, 'f', -1, 64), req.From, FormatValue(result), req.To)
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Categories(), c) {
		return "", abacuserrors.UnknownCategory(name)
	}
	return c, nil
}
