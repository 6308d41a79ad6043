package calc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ErrorMarker is what the result surface shows when evaluation fails.
const ErrorMarker = "Error"

// Result is either a finite number or the error marker.
type Result struct {
	value  float64
	failed bool
}

// Number returns a successful result holding v.
func Number(v float64) Result {
	return Result{value: v}
}

// Failure returns the error-marker result.
func Failure() Result {
	return Result{failed: true}
}

// Failed reports whether r is the error marker.
func (r Result) Failed() bool {
	return r.failed
}

// Value returns the numeric value; zero for the error marker.
func (r Result) Value() float64 {
	return r.value
}

// String formats the result for display.
func (r Result) String() string {
	if r.failed {
		return ErrorMarker
	}
	return FormatNumber(r.value)
}

// FormatNumber renders v with the shortest representation that round-trips,
// switching to exponent form only for very large magnitudes.
func FormatNumber(v float64) string {
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MarshalJSON writes a number, or the marker as a string.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.failed {
		return json.Marshal(ErrorMarker)
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON accepts a JSON number or a string holding either the error
// marker or a number.
func (r *Result) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == ErrorMarker {
			*r = Failure()
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("result %q is neither a number nor %q", s, ErrorMarker)
		}
		*r = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Number(v)
	return nil
}
