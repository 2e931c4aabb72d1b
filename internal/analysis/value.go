package analysis

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a numeric cell that is either defined or explicitly undefined.
// The zero Value is undefined.
type Value struct {
	v       float64
	defined bool
}

// Undefined is the explicit "no value" marker.
var Undefined = Value{}

// Defined wraps a real number. NaN and infinities are not real measurements
// and collapse to Undefined.
func Defined(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined
	}
	return Value{v: v, defined: true}
}

// Int wraps an integer count.
func Int(v int) Value {
	return Value{v: float64(v), defined: true}
}

// Float64 returns the wrapped number and whether it is defined.
func (v Value) Float64() (float64, bool) {
	return v.v, v.defined
}

// IsDefined reports whether the value carries a number.
func (v Value) IsDefined() bool {
	return v.defined
}

// Or returns the wrapped number, or fallback when undefined.
func (v Value) Or(fallback float64) float64 {
	if !v.defined {
		return fallback
	}
	return v.v
}

// String renders undefined values as NA and numbers in their shortest form.
func (v Value) String() string {
	if !v.defined {
		return "NA"
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}

// Round returns the value rounded to the given number of decimal places.
func (v Value) Round(places int) Value {
	if !v.defined {
		return v
	}
	scale := math.Pow(10, float64(places))
	rounded := math.Round(v.v*scale) / scale
	if rounded == 0 {
		// no negative zero
		rounded = 0
	}
	return Value{v: rounded, defined: true}
}

// MarshalJSON encodes undefined values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.defined {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// MarshalYAML encodes undefined values as null.
func (v Value) MarshalYAML() (any, error) {
	if !v.defined {
		return nil, nil
	}
	return v.v, nil
}
