package metrics

import (
	"encoding/json"
	"strconv"
)

// Value is an optional float64. A metric the provider could not supply is
// Absent, which is a distinct state from zero: absent values propagate as
// UNKNOWN through criterion evaluation and are never coerced to a number.
type Value struct {
	val     float64
	present bool
}

// Some returns a present Value
func Some(v float64) Value {
	return Value{val: v, present: true}
}

// None returns an absent Value
func None() Value {
	return Value{}
}

// FromPtr converts an optional JSON field to a Value
func FromPtr(p *float64) Value {
	if p == nil {
		return None()
	}
	return Some(*p)
}

// Present reports whether the value is known
func (v Value) Present() bool {
	return v.present
}

// Float64 returns the numeric value and whether it is present
func (v Value) Float64() (float64, bool) {
	return v.val, v.present
}

// String formats the value for reports; absent values render as "N/A"
func (v Value) String() string {
	if !v.present {
		return "N/A"
	}
	return strconv.FormatFloat(v.val, 'f', 2, 64)
}

// MarshalJSON encodes absent values as null
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.val)
}

// UnmarshalJSON decodes null as absent
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = None()
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Some(f)
	return nil
}
