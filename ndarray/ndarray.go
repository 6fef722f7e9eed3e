// Copyright 2025 The dataclassic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"iter"

	"github.com/dataclassic/dataclassic/internal/ndarray"
)

// Type aliases for public API

// Array is a rectangular N-dimensional array of Values.
type Array = ndarray.Array

// Value is one array element: a number, a string, a boolean or NaN.
type Value = ndarray.Value

// Kind identifies the member of the Value sum type.
type Kind = ndarray.Kind

// Value kinds.
const (
	KindNumber Kind = ndarray.KindNumber
	KindString Kind = ndarray.KindString
	KindBool   Kind = ndarray.KindBool
	KindNaN    Kind = ndarray.KindNaN
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Index selects positions along one axis.
type Index = ndarray.Index

// IndexKind identifies the form of an Index.
type IndexKind = ndarray.IndexKind

// Index kinds.
const (
	ScalarIndex   IndexKind = ndarray.ScalarIndex
	RangeIndex    IndexKind = ndarray.RangeIndex
	ExplicitIndex IndexKind = ndarray.ExplicitIndex
)

// Selection is either a scalar Value or an *Array.
type Selection = ndarray.Selection

// Reduction names a statistical reduction.
type Reduction = ndarray.Reduction

// Supported reductions.
const (
	Sum  Reduction = ndarray.Sum
	Mean Reduction = ndarray.Mean
	Var  Reduction = ndarray.Var
	Std  Reduction = ndarray.Std
	Min  Reduction = ndarray.Min
	Max  Reduction = ndarray.Max
)

// Option configures New.
type Option = ndarray.Option

// ReduceOption configures Reduce.
type ReduceOption = ndarray.ReduceOption

// NaN is the shared not-a-number marker.
var NaN = ndarray.NaN

// Errors returned by array operations. Use errors.Is to test for them.
var (
	ErrNoData           = ndarray.ErrNoData
	ErrIndexType        = ndarray.ErrIndexType
	ErrInvalidSlice     = ndarray.ErrInvalidSlice
	ErrInvalidShape     = ndarray.ErrInvalidShape
	ErrRagged           = ndarray.ErrRagged
	ErrInvalidAxis      = ndarray.ErrInvalidAxis
	ErrType             = ndarray.ErrType
	ErrUnknownReduction = ndarray.ErrUnknownReduction
	ErrIndexOutOfRange  = ndarray.ErrIndexOutOfRange
	ErrTooManyIndices   = ndarray.ErrTooManyIndices
	ErrDivisionByZero   = ndarray.ErrDivisionByZero
	ErrDegreesOfFreedom = ndarray.ErrDegreesOfFreedom
	ErrEmptyReduction   = ndarray.ErrEmptyReduction
	ErrShapeMismatch    = ndarray.ErrShapeMismatch
)

// Creation functions

// New builds an array from nested data, another Array or a scalar, or from
// WithShape and WithFill when data is nil.
//
// Example:
//
//	a, err := ndarray.New([][]float64{{1, 2}, {3, 4}})
//	z, err := ndarray.New(nil, ndarray.WithShape(2, 2), ndarray.WithFill(0))
func New(data any, opts ...Option) (*Array, error) {
	return ndarray.New(data, opts...)
}

// MustNew is like New but panics on error.
func MustNew(data any, opts ...Option) *Array {
	return ndarray.MustNew(data, opts...)
}

// Full allocates an array of the given shape filled with fill.
func Full(shape Shape, fill any) (*Array, error) {
	return ndarray.Full(shape, fill)
}

// Zeros allocates an array of the given dimensions filled with 0.
func Zeros(dims ...int) (*Array, error) {
	return ndarray.Zeros(dims...)
}

// Eye returns the m x m identity matrix.
func Eye(m int) (*Array, error) {
	return ndarray.Eye(m)
}

// WithShape allocates an array of the given shape when New receives no data.
func WithShape(dims ...int) Option {
	return ndarray.WithShape(dims...)
}

// WithFill sets the value used with WithShape.
func WithFill(v any) Option {
	return ndarray.WithFill(v)
}

// WithAllowNaN selects NaN (true) or ErrDivisionByZero (false) for division by zero.
func WithAllowNaN(allow bool) Option {
	return ndarray.WithAllowNaN(allow)
}

// WithName attaches a display label.
func WithName(name string) Option {
	return ndarray.WithName(name)
}

// Values

// NumberValue wraps a float64.
func NumberValue(f float64) Value {
	return ndarray.NumberValue(f)
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return ndarray.StringValue(s)
}

// BoolValue wraps a bool.
func BoolValue(b bool) Value {
	return ndarray.BoolValue(b)
}

// ValueOf converts a Go scalar into a Value; nil maps to NaN.
func ValueOf(x any) (Value, error) {
	return ndarray.ValueOf(x)
}

// Indexing

// At selects a single position; negative positions count from the end.
func At(i int) Index {
	return ndarray.At(i)
}

// All selects a whole axis.
func All() Index {
	return ndarray.All()
}

// Range selects [start, stop).
func Range(start, stop int) Index {
	return ndarray.Range(start, stop)
}

// RangeStep selects every step-th position of [start, stop).
func RangeStep(start, stop, step int) Index {
	return ndarray.RangeStep(start, stop, step)
}

// From selects [start, end of axis).
func From(start int) Index {
	return ndarray.From(start)
}

// To selects [0, stop).
func To(stop int) Index {
	return ndarray.To(stop)
}

// List selects explicit positions.
func List(positions ...int) Index {
	return ndarray.List(positions...)
}

// ParseIndices parses an index expression such as "1:3,1".
func ParseIndices(expr string) ([]Index, error) {
	return ndarray.ParseIndices(expr)
}

// MultiRange enumerates every coordinate of a grid in row-major order.
//
// Example:
//
//	for idx := range ndarray.MultiRange(2, 3) {
//	    fmt.Println(idx) // [0 0] [0 1] [0 2] [1 0] [1 1] [1 2]
//	}
func MultiRange(dims ...int) iter.Seq[[]int] {
	return ndarray.MultiRange(dims...)
}

// Reductions

// WithAxis reduces along one axis.
func WithAxis(axis int) ReduceOption {
	return ndarray.WithAxis(axis)
}

// WithDDOF sets the degrees of freedom for Var and Std (default 1).
func WithDDOF(ddof int) ReduceOption {
	return ndarray.WithDDOF(ddof)
}

// ParseReduction maps "sum", "mean", "var", "std", "min" or "max" to a Reduction.
func ParseReduction(name string) (Reduction, error) {
	return ndarray.ParseReduction(name)
}

// Manipulation functions

// Transpose reverses the axes of x.
func Transpose(x any) (*Array, error) {
	return ndarray.Transpose(x)
}

// Append concatenates x and y along axis.
func Append(x, y any, axis int) (*Array, error) {
	return ndarray.Append(x, y, axis)
}

// Delete removes positions along axis.
func Delete(x any, positions []int, axis int) (*Array, error) {
	return ndarray.Delete(x, positions, axis)
}

// DeleteFlat flattens x and removes row-major positions.
func DeleteFlat(x any, positions []int) (*Array, error) {
	return ndarray.DeleteFlat(x, positions)
}
