package ndarray

import (
	"fmt"
	"iter"
)

// Shape represents the dimensions of an array, outermost axis first.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one axis and no negative dimension.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: at least one axis is required", ErrInvalidShape)
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Reversed returns the shape with its axes in reverse order.
func (s Shape) Reversed() Shape {
	r := make(Shape, len(s))
	for i, dim := range s {
		r[len(s)-1-i] = dim
	}
	return r
}

// Squeeze returns the shape without its size-1 axes.
func (s Shape) Squeeze() Shape {
	out := make(Shape, 0, len(s))
	for _, dim := range s {
		if dim != 1 {
			out = append(out, dim)
		}
	}
	return out
}

// without returns the shape with axis removed.
func (s Shape) without(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	return append(out, s[axis+1:]...)
}

// ComputeStrides calculates row-major strides for the shape:
// stride[i] is the product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Indices enumerates every coordinate of the shape in row-major order: the
// last axis varies fastest. A zero-size axis yields nothing; an empty shape
// yields a single empty coordinate. Each range over the sequence starts over.
//
// The yielded slice is reused between iterations; copy it to retain it.
func (s Shape) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, dim := range s {
			if dim <= 0 {
				return
			}
		}

		idx := make([]int, len(s))
		for {
			if !yield(idx) {
				return
			}
			k := len(s) - 1
			for ; k >= 0; k-- {
				idx[k]++
				if idx[k] < s[k] {
					break
				}
				idx[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}

// MultiRange enumerates the coordinates of a grid with the given dimension
// sizes; see Shape.Indices.
func MultiRange(dims ...int) iter.Seq[[]int] {
	return Shape(dims).Indices()
}
