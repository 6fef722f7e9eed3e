// Package ndarray implements an in-memory N-dimensional array of numbers,
// strings and booleans with multi-axis indexing, elementwise arithmetic,
// shape transforms and axis reductions.
package ndarray

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which member of the Value sum type is set.
type Kind uint8

// Value kinds.
const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNaN
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNaN:
		return "nan"
	default:
		return "unknown"
	}
}

// Value is a single array element: a number, a string, a boolean or NaN.
// The zero Value is the number 0.
type Value struct {
	kind Kind
	num  float64 // number, or 0/1 for bool
	str  string
}

// NaN is the shared not-a-number marker. It is unequal to every value,
// itself included, and is falsy.
var NaN = Value{kind: KindNaN}

// NumberValue wraps a float64.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// BoolValue wraps a bool.
func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Kind returns the member of the sum type held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNaN reports whether v is the NaN marker.
func (v Value) IsNaN() bool {
	return v.kind == KindNaN
}

// Float returns the numeric view of v. Booleans count as 0 and 1.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber, KindBool:
		return v.num, true
	default:
		return 0, false
	}
}

// Text returns the string held by v.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Truthy reports the boolean interpretation of v: non-zero numbers,
// non-empty strings and true. NaN is falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber, KindBool:
		return v.num != 0
	case KindString:
		return v.str != ""
	default:
		return false
	}
}

// Equal reports whether v and o hold the same value. Numbers and booleans
// compare numerically; NaN equals nothing.
func (v Value) Equal(o Value) bool {
	if v.kind == KindNaN || o.kind == KindNaN {
		return false
	}
	if v.kind == KindString || o.kind == KindString {
		return v.kind == o.kind && v.str == o.str
	}
	return v.num == o.num
}

// Interface returns v as a plain Go value: float64, string, bool, or nil for NaN.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBool:
		return v.num != 0
	default:
		return nil
	}
}

// String formats v for display. Integral numbers print without a fraction.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		if math.Abs(v.num) < 1e21 {
			return strconv.FormatFloat(v.num, 'f', -1, 64)
		}
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	default:
		return "NaN"
	}
}

// ValueOf converts a Go scalar into a Value. nil maps to NaN.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return NaN, nil
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return NaN, nil
		}
		return *t, nil
	case float64:
		return NumberValue(t), nil
	case float32:
		return NumberValue(float64(t)), nil
	case int:
		return NumberValue(float64(t)), nil
	case int8:
		return NumberValue(float64(t)), nil
	case int16:
		return NumberValue(float64(t)), nil
	case int32:
		return NumberValue(float64(t)), nil
	case int64:
		return NumberValue(float64(t)), nil
	case uint:
		return NumberValue(float64(t)), nil
	case uint8:
		return NumberValue(float64(t)), nil
	case uint16:
		return NumberValue(float64(t)), nil
	case uint32:
		return NumberValue(float64(t)), nil
	case uint64:
		return NumberValue(float64(t)), nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrType, x)
	}
}

// isScalar reports whether x converts with ValueOf.
func isScalar(x any) bool {
	_, err := ValueOf(x)
	return err == nil
}
