package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/dgallion1/svgpaths/attrs"
)

// ErrInvalidNumber is wrapped by every NumericFieldError.
var ErrInvalidNumber = errors.New("invalid number")

// NumericFieldError reports a geometry attribute whose value does not start
// with a decimal number, or whose number is out of float64 range.
type NumericFieldError struct {
	Kind  Kind
	Field string
	Value string
}

func (e *NumericFieldError) Error() string {
	return fmt.Sprintf("%s: attribute %s=%q: %v", e.Kind, e.Field, e.Value, ErrInvalidNumber)
}

func (e *NumericFieldError) Unwrap() error { return ErrInvalidNumber }

// parseNumber reads the longest decimal prefix of s after leading whitespace,
// so "10px" is 10. Values that overflow to infinity are rejected.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// takeNumbers removes keys from a and parses their values. Absent keys are 0.
func takeNumbers(kind Kind, a *attrs.Attrs, keys ...string) ([]float64, error) {
	vals := make([]float64, len(keys))
	for i, key := range keys {
		raw, ok := a.Take(key)
		if !ok {
			continue
		}
		f, ok := parseNumber(raw)
		if !ok {
			return nil, &NumericFieldError{Kind: kind, Field: key, Value: raw}
		}
		vals[i] = f
	}
	return vals, nil
}
