package ndarray

import (
	"fmt"
	"math"
)

// binaryOp combines two elements. Division-style ops report ErrDivisionByZero
// and leave the NaN policy to the caller.
type binaryOp func(x, y Value) (Value, error)

// unaryOp maps one element.
type unaryOp func(x Value) (Value, error)

func numericPair(op string, x, y Value) (float64, float64, error) {
	a, ok := x.Float()
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s %s %s", ErrType, x.kind, op, y.kind)
	}
	b, ok := y.Float()
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s %s %s", ErrType, x.kind, op, y.kind)
	}
	return a, b, nil
}

func addValues(x, y Value) (Value, error) {
	if x.kind == KindString && y.kind == KindString {
		return StringValue(x.str + y.str), nil
	}
	if x.IsNaN() || y.IsNaN() {
		return NaN, nil
	}
	a, b, err := numericPair("+", x, y)
	if err != nil {
		return Value{}, err
	}
	return NumberValue(a + b), nil
}

func subValues(x, y Value) (Value, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN, nil
	}
	a, b, err := numericPair("-", x, y)
	if err != nil {
		return Value{}, err
	}
	return NumberValue(a - b), nil
}

func mulValues(x, y Value) (Value, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN, nil
	}
	a, b, err := numericPair("*", x, y)
	if err != nil {
		return Value{}, err
	}
	return NumberValue(a * b), nil
}

func divValues(x, y Value) (Value, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN, nil
	}
	a, b, err := numericPair("/", x, y)
	if err != nil {
		return Value{}, err
	}
	if b == 0 {
		return Value{}, ErrDivisionByZero
	}
	return NumberValue(a / b), nil
}

// modValues takes the sign of the divisor, so -1 % 3 == 2.
func modValues(x, y Value) (Value, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN, nil
	}
	a, b, err := numericPair("%", x, y)
	if err != nil {
		return Value{}, err
	}
	if b == 0 {
		return Value{}, ErrDivisionByZero
	}
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return NumberValue(r), nil
}

func powValues(x, y Value) (Value, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN, nil
	}
	a, b, err := numericPair("**", x, y)
	if err != nil {
		return Value{}, err
	}
	if a == 0 && b < 0 {
		return Value{}, ErrDivisionByZero
	}
	return NumberValue(math.Pow(a, b)), nil
}

func negValue(x Value) (Value, error) {
	if x.IsNaN() {
		return NaN, nil
	}
	a, ok := x.Float()
	if !ok {
		return Value{}, fmt.Errorf("%w: -%s", ErrType, x.kind)
	}
	return NumberValue(-a), nil
}

func absValue(x Value) (Value, error) {
	if x.IsNaN() {
		return NaN, nil
	}
	a, ok := x.Float()
	if !ok {
		return Value{}, fmt.Errorf("%w: abs(%s)", ErrType, x.kind)
	}
	return NumberValue(math.Abs(a)), nil
}

// roundValue rounds half to even at the given number of decimals.
// Negative decimals round to tens, hundreds and so on.
func roundValue(decimals int) unaryOp {
	scale := math.Pow(10, float64(decimals))
	return func(x Value) (Value, error) {
		if x.IsNaN() {
			return NaN, nil
		}
		a, ok := x.Float()
		if !ok {
			return Value{}, fmt.Errorf("%w: round(%s)", ErrType, x.kind)
		}
		if math.IsInf(a, 0) || math.IsNaN(a) {
			return NumberValue(a), nil
		}
		return NumberValue(math.RoundToEven(a*scale) / scale), nil
	}
}

// compareValues orders x against y. ok is false when either side is NaN,
// which makes every ordering comparison false.
func compareValues(x, y Value) (cmp int, ok bool, err error) {
	if x.IsNaN() || y.IsNaN() {
		return 0, false, nil
	}
	if x.kind == KindString || y.kind == KindString {
		if x.kind != y.kind {
			return 0, false, fmt.Errorf("%w: cannot order %s and %s", ErrType, x.kind, y.kind)
		}
		switch {
		case x.str < y.str:
			return -1, true, nil
		case x.str > y.str:
			return 1, true, nil
		}
		return 0, true, nil
	}
	switch {
	case x.num < y.num:
		return -1, true, nil
	case x.num > y.num:
		return 1, true, nil
	}
	return 0, true, nil
}

func ordering(pred func(cmp int) bool) binaryOp {
	return func(x, y Value) (Value, error) {
		cmp, ok, err := compareValues(x, y)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(ok && pred(cmp)), nil
	}
}

var (
	eqValues = func(x, y Value) (Value, error) { return BoolValue(x.Equal(y)), nil }
	neValues = func(x, y Value) (Value, error) { return BoolValue(!x.Equal(y)), nil }
	ltValues = ordering(func(c int) bool { return c < 0 })
	gtValues = ordering(func(c int) bool { return c > 0 })
	leValues = ordering(func(c int) bool { return c <= 0 })
	geValues = ordering(func(c int) bool { return c >= 0 })

	andValues = func(x, y Value) (Value, error) { return BoolValue(x.Truthy() && y.Truthy()), nil }
	orValues  = func(x, y Value) (Value, error) { return BoolValue(x.Truthy() || y.Truthy()), nil }
)
