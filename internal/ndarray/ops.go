package ndarray

import (
	"errors"
	"fmt"
)

// Add returns a + other elementwise. other is a scalar, an *Array of the same
// shape, or nested data of the same shape. Strings concatenate.
func (a *Array) Add(other any) (*Array, error) {
	return a.elementwise(other, addValues)
}

// Sub returns a - other elementwise.
func (a *Array) Sub(other any) (*Array, error) {
	return a.elementwise(other, subValues)
}

// Mul returns a * other elementwise.
func (a *Array) Mul(other any) (*Array, error) {
	return a.elementwise(other, mulValues)
}

// Div returns a / other elementwise. A zero divisor yields NaN when the array
// allows NaN; otherwise the first zero divisor aborts with ErrDivisionByZero.
//
// Example:
//
//	x := ndarray.MustNew([]int{1, 2, 0})
//	y, _ := x.Div([]int{1, 0, 0}) // [1 NaN NaN]
func (a *Array) Div(other any) (*Array, error) {
	return a.elementwise(other, divValues)
}

// Mod returns a % other elementwise, with the sign of the divisor. Zero
// divisors follow the Div policy.
func (a *Array) Mod(other any) (*Array, error) {
	return a.elementwise(other, modValues)
}

// Pow returns a ** exponent elementwise. Zero raised to a negative power
// follows the Div policy.
func (a *Array) Pow(exponent any) (*Array, error) {
	return a.elementwise(exponent, powValues)
}

// Eq returns a boolean array of a == other.
func (a *Array) Eq(other any) (*Array, error) {
	return a.elementwise(other, eqValues)
}

// Ne returns a boolean array of a != other.
func (a *Array) Ne(other any) (*Array, error) {
	return a.elementwise(other, neValues)
}

// Lt returns a boolean array of a < other.
func (a *Array) Lt(other any) (*Array, error) {
	return a.elementwise(other, ltValues)
}

// Gt returns a boolean array of a > other.
func (a *Array) Gt(other any) (*Array, error) {
	return a.elementwise(other, gtValues)
}

// Le returns a boolean array of a <= other.
func (a *Array) Le(other any) (*Array, error) {
	return a.elementwise(other, leValues)
}

// Ge returns a boolean array of a >= other.
func (a *Array) Ge(other any) (*Array, error) {
	return a.elementwise(other, geValues)
}

// And returns a boolean array that is true where both operands are truthy.
func (a *Array) And(other any) (*Array, error) {
	return a.elementwise(other, andValues)
}

// Or returns a boolean array that is true where either operand is truthy.
func (a *Array) Or(other any) (*Array, error) {
	return a.elementwise(other, orValues)
}

// Neg returns -a.
func (a *Array) Neg() (*Array, error) {
	return a.mapValues(negValue)
}

// Abs returns the elementwise absolute value.
func (a *Array) Abs() (*Array, error) {
	return a.mapValues(absValue)
}

// Round rounds every element half to even at the given number of decimals.
func (a *Array) Round(decimals int) (*Array, error) {
	return a.mapValues(roundValue(decimals))
}

// All reports whether every element is truthy.
func (a *Array) All() bool {
	for _, v := range a.data {
		if !v.Truthy() {
			return false
		}
	}
	return true
}

// Any reports whether some element is truthy.
func (a *Array) Any() bool {
	for _, v := range a.data {
		if v.Truthy() {
			return true
		}
	}
	return false
}

// operand normalizes the right-hand side of a binary operator into either a
// scalar or an array of a's shape.
func (a *Array) operand(other any) (*Array, Value, error) {
	if isScalar(other) {
		v, _ := ValueOf(other)
		return nil, v, nil
	}
	rhs, ok := other.(*Array)
	if !ok || rhs == nil {
		var err error
		if rhs, err = New(other); err != nil {
			return nil, Value{}, err
		}
	}
	if !rhs.shape.Equal(a.shape) {
		return nil, Value{}, fmt.Errorf("%w: operands %v and %v", ErrShapeMismatch, a.shape, rhs.shape)
	}
	return rhs, Value{}, nil
}

func (a *Array) elementwise(other any, op binaryOp) (*Array, error) {
	rhs, scalar, err := a.operand(other)
	if err != nil {
		return nil, err
	}

	out := a.Clone()
	k := 0
	for coord := range a.shape.Indices() {
		y := scalar
		if rhs != nil {
			y = rhs.data[k]
		}
		v, err := op(a.data[k], y)
		if errors.Is(err, ErrDivisionByZero) && a.allowNaN {
			v, err = NaN, nil
		}
		if err != nil {
			return nil, elementError(err, coord)
		}
		out.data[k] = v
		k++
	}
	return out, nil
}

func (a *Array) mapValues(op unaryOp) (*Array, error) {
	out := a.Clone()
	k := 0
	for coord := range a.shape.Indices() {
		v, err := op(a.data[k])
		if err != nil {
			return nil, elementError(err, coord)
		}
		out.data[k] = v
		k++
	}
	return out, nil
}

func elementError(err error, coord []int) error {
	return fmt.Errorf("%w at %v", err, append([]int(nil), coord...))
}
