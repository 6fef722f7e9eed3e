package ndarray

import (
	"fmt"
	"iter"
	"slices"
)

// Flatten returns a 1-D copy of the elements in row-major order.
func (a *Array) Flatten() *Array {
	out := a.Clone()
	out.reshapeInPlace(Shape{len(out.data)})
	return out
}

// Reshape flattens a in row-major order and refills a new array of the given
// shape from it. Extra positions take fill; surplus elements are dropped.
//
// Example:
//
//	a := ndarray.MustNew([]int{1, 2, 3, 4})
//	b, _ := a.Reshape(ndarray.Shape{2, 3}, 0) // [[1 2 3] [4 0 0]]
func (a *Array) Reshape(shape Shape, fill any) (*Array, error) {
	out, err := Full(shape, fill)
	if err != nil {
		return nil, err
	}
	out.allowNaN, out.name = a.allowNaN, a.name
	copy(out.data, a.data)
	return out, nil
}

// Transpose reverses the axes: the result's value at reversed coordinates
// equals a's value at the original coordinates.
func (a *Array) Transpose() *Array {
	out := a.derive(a.shape.Reversed())
	n := len(a.shape)
	k := 0
	for coord := range a.shape.Indices() {
		off := 0
		for d, c := range coord {
			off += c * out.strides[n-1-d]
		}
		out.data[off] = a.data[k]
		k++
	}
	return out
}

// Rows iterates over the outermost axis, yielding Get(At(i)) for each row.
func (a *Array) Rows() iter.Seq2[int, Selection] {
	return func(yield func(int, Selection) bool) {
		for i := range a.shape[0] {
			row, err := a.Get(At(i))
			if err != nil || !yield(i, row) {
				return
			}
		}
	}
}

// Columns iterates over the second axis, yielding Get(All(), At(j)). It
// yields nothing for 1-D arrays.
func (a *Array) Columns() iter.Seq2[int, Selection] {
	return func(yield func(int, Selection) bool) {
		if a.NDim() < 2 {
			return
		}
		for j := range a.shape[1] {
			col, err := a.Get(All(), At(j))
			if err != nil || !yield(j, col) {
				return
			}
		}
	}
}

// Values iterates over every element in row-major order.
func (a *Array) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Where keeps the elements whose mask entry is truthy, filtering along the
// last axis. Every row must keep the same number of elements.
func (a *Array) Where(mask any) (*Array, error) {
	m, _, err := a.operand(mask)
	if err != nil {
		return nil, err
	}
	if m == nil {
		if v, _ := ValueOf(mask); v.Truthy() {
			return a.Clone(), nil
		}
		m = newArray(a.shape)
	}

	last := a.shape[len(a.shape)-1]
	rows := len(a.data) / max(last, 1)
	kept := -1
	data := make([]Value, 0, len(a.data))
	for r := range rows {
		n := 0
		for j := range last {
			if k := r*last + j; m.data[k].Truthy() {
				data = append(data, a.data[k])
				n++
			}
		}
		if kept >= 0 && n != kept {
			return nil, fmt.Errorf("%w: row %d keeps %d elements, expected %d", ErrRagged, r, n, kept)
		}
		kept = n
	}

	shape := a.Shape()
	shape[len(shape)-1] = max(kept, 0)
	out := fromFlat(shape, data)
	out.allowNaN, out.name = a.allowNaN, a.name
	return out, nil
}

// MapFill returns a copy where each element is replaced by fn(value, coords).
// coords is reused between calls.
func (a *Array) MapFill(fn func(v Value, coords []int) Value) *Array {
	out := a.Clone()
	k := 0
	for coord := range a.shape.Indices() {
		out.data[k] = fn(a.data[k], coord)
		k++
	}
	return out
}

// IndexFill returns a copy whose elements look like their coordinates:
// element (i, j, k) becomes i*100 + j*10 + k.
func (a *Array) IndexFill() *Array {
	return a.MapFill(func(_ Value, coords []int) Value {
		n, scale := 0, 1
		for d := len(coords) - 1; d >= 0; d-- {
			n += coords[d] * scale
			scale *= 10
		}
		return NumberValue(float64(n))
	})
}

// RandomFill returns a copy filled with uniform values in [0, 1) drawn from
// src. A nil src uses the package-level generator.
func (a *Array) RandomFill(src interface{ Float64() float64 }) *Array {
	if src == nil {
		src = defaultRand{}
	}
	return a.MapFill(func(Value, []int) Value {
		return NumberValue(src.Float64())
	})
}

// Append concatenates x and y along axis. Both must agree on every other axis.
func Append(x, y any, axis int) (*Array, error) {
	xa, err := asArray(x)
	if err != nil {
		return nil, err
	}
	ya, err := asArray(y)
	if err != nil {
		return nil, err
	}
	if xa.NDim() != ya.NDim() || axis < 0 || axis >= xa.NDim() {
		return nil, fmt.Errorf("%w: append along %d of %v and %v", ErrInvalidAxis, axis, xa.shape, ya.shape)
	}
	for d := range xa.shape {
		if d != axis && xa.shape[d] != ya.shape[d] {
			return nil, fmt.Errorf("%w: append %v and %v along %d", ErrShapeMismatch, xa.shape, ya.shape, axis)
		}
	}

	shape := xa.Shape()
	shape[axis] += ya.shape[axis]
	out := xa.derive(shape)
	split := xa.shape[axis]
	k := 0
	for coord := range shape.Indices() {
		src, c := xa, coord[axis]
		if c >= split {
			src, c = ya, c-split
		}
		off := 0
		for d, i := range coord {
			if d == axis {
				i = c
			}
			off += i * src.strides[d]
		}
		out.data[k] = src.data[off]
		k++
	}
	return out, nil
}

// Delete removes the given positions along axis.
func Delete(x any, drop []int, axis int) (*Array, error) {
	xa, err := asArray(x)
	if err != nil {
		return nil, err
	}
	if axis < 0 || axis >= xa.NDim() {
		return nil, fmt.Errorf("%w: %d for %d-dimensional array", ErrInvalidAxis, axis, xa.NDim())
	}
	keep := make([]int, 0, xa.shape[axis])
	for i := range xa.shape[axis] {
		if !slices.Contains(drop, i) {
			keep = append(keep, i)
		}
	}
	idx := make([]Index, axis+1)
	for d := range axis {
		idx[d] = All()
	}
	idx[axis] = List(keep...)
	pos, err := xa.resolveAll(idx)
	if err != nil {
		return nil, err
	}
	return xa.gather(pos), nil
}

// DeleteFlat flattens x and removes the given row-major positions.
func DeleteFlat(x any, drop []int) (*Array, error) {
	xa, err := asArray(x)
	if err != nil {
		return nil, err
	}
	return Delete(xa.Flatten(), drop, 0)
}

// Eye returns the m x m identity matrix.
func Eye(m int) (*Array, error) {
	a, err := Zeros(m, m)
	if err != nil {
		return nil, err
	}
	for i := range m {
		a.data[i*m+i] = NumberValue(1)
	}
	return a, nil
}

// Transpose is the function form of Array.Transpose.
func Transpose(x any) (*Array, error) {
	xa, err := asArray(x)
	if err != nil {
		return nil, err
	}
	return xa.Transpose(), nil
}

// asArray uses x directly when it is an *Array and builds one otherwise.
func asArray(x any) (*Array, error) {
	if a, ok := x.(*Array); ok && a != nil {
		return a, nil
	}
	return New(x)
}
