package ndarray

import (
	"fmt"
)

// Selection is the result of Get and of reductions: either a scalar Value
// or an *Array.
type Selection struct {
	arr    *Array
	scalar Value
}

// IsScalar reports whether the selection holds a single Value.
func (s Selection) IsScalar() bool {
	return s.arr == nil
}

// Scalar returns the selected Value. It is the zero Value for array selections.
func (s Selection) Scalar() Value {
	return s.scalar
}

// Array returns the selected array, or nil for scalar selections.
func (s Selection) Array() *Array {
	return s.arr
}

// Interface returns the scalar as a plain Go value, or the nested slice form
// of the array.
func (s Selection) Interface() any {
	if s.arr != nil {
		return s.arr.ToNested()
	}
	return s.scalar.Interface()
}

// String formats the selection for display.
func (s Selection) String() string {
	if s.arr != nil {
		return s.arr.String()
	}
	return s.scalar.String()
}

// Get reads the elements selected by one specifier per leading axis; missing
// trailing axes are taken whole. Selecting one position on every axis yields a
// scalar. Otherwise the result is a new array whose scalar-indexed axes are
// dropped, and whose leading and then trailing axis are dropped when their
// size is 1, never going below one dimension.
//
// Example:
//
//	a.Get(ndarray.Range(1, 3), ndarray.At(1)) // a[1:3, 1]
func (a *Array) Get(idx ...Index) (Selection, error) {
	pos, err := a.resolveAll(idx)
	if err != nil {
		return Selection{}, err
	}

	if isPoint(idx, a.NDim()) {
		off := 0
		for d, p := range pos {
			off += p.At(0) * a.strides[d]
		}
		return Selection{scalar: a.data[off]}, nil
	}

	out := a.gather(pos)
	shape := make(Shape, 0, len(out.shape))
	for d, dim := range out.shape {
		if d < len(idx) && idx[d].kind == ScalarIndex {
			continue
		}
		shape = append(shape, dim)
	}
	out.reshapeInPlace(collapse(shape))
	return Selection{arr: out}, nil
}

// Set writes value into the region selected by idx, in place. A scalar value
// is written to every selected element; an array or nested value must have
// the region's shape once size-1 axes are ignored. Nothing is written when
// an error is returned.
//
// Example:
//
//	err := a.Set([]int{9, 9}, ndarray.Range(0, 2), ndarray.At(0)) // a[0:2, 0] = [9, 9]
func (a *Array) Set(value any, idx ...Index) error {
	pos, err := a.resolveAll(idx)
	if err != nil {
		return err
	}

	region := make(Shape, len(pos))
	for d, p := range pos {
		region[d] = p.Len()
	}

	var src []Value
	if isScalar(value) {
		v, _ := ValueOf(value)
		src = []Value{v}
	} else {
		rhs, err := New(value)
		if err != nil {
			return err
		}
		switch {
		case rhs.NumElements() == 1:
			src = rhs.data
		case !rhs.shape.Squeeze().Equal(region.Squeeze()):
			return fmt.Errorf("%w: cannot assign shape %v to region %v", ErrShapeMismatch, rhs.shape, region)
		default:
			src = rhs.data
		}
	}

	k := 0
	for coord := range region.Indices() {
		off := 0
		for d, c := range coord {
			off += pos[d].At(c) * a.strides[d]
		}
		if len(src) == 1 {
			a.data[off] = src[0]
		} else {
			a.data[off] = src[k]
		}
		k++
	}
	return nil
}

// resolveAll resolves one specifier per axis, padding missing axes with All,
// and checks explicit positions against their axis.
func (a *Array) resolveAll(idx []Index) ([]positions, error) {
	if len(idx) > a.NDim() {
		return nil, fmt.Errorf("%w: %d indices for %d-dimensional array", ErrTooManyIndices, len(idx), a.NDim())
	}
	pos := make([]positions, a.NDim())
	for d := range pos {
		ix := All()
		if d < len(idx) {
			ix = idx[d]
		}
		p, err := resolve(ix, a.shape[d])
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", d, err)
		}
		if p.explicit {
			list := make([]int, len(p.list))
			for k, i := range p.list {
				if list[k], err = wrapPosition(i, a.shape[d]); err != nil {
					return nil, fmt.Errorf("axis %d: %w", d, err)
				}
			}
			p.list = list
		}
		pos[d] = p
	}
	return pos, nil
}

// gather copies the selected positions into a new array shaped by the
// number of positions per axis.
func (a *Array) gather(pos []positions) *Array {
	counts := make(Shape, len(pos))
	for d, p := range pos {
		counts[d] = p.Len()
	}
	out := a.derive(counts)
	k := 0
	for coord := range counts.Indices() {
		off := 0
		for d, c := range coord {
			off += pos[d].At(c) * a.strides[d]
		}
		out.data[k] = a.data[off]
		k++
	}
	return out
}

// reshapeInPlace relabels the shape of a freshly built array; the element
// count must not change.
func (a *Array) reshapeInPlace(shape Shape) {
	a.shape = shape
	a.strides = shape.ComputeStrides()
}

func isPoint(idx []Index, ndim int) bool {
	if len(idx) != ndim {
		return false
	}
	for _, ix := range idx {
		if ix.kind != ScalarIndex {
			return false
		}
	}
	return true
}

// collapse drops a leading size-1 axis and then a trailing size-1 axis while
// more than one axis remains.
func collapse(shape Shape) Shape {
	if len(shape) == 0 {
		return Shape{1}
	}
	if len(shape) > 1 && shape[0] == 1 {
		shape = shape[1:]
	}
	if len(shape) > 1 && shape[len(shape)-1] == 1 {
		shape = shape[:len(shape)-1]
	}
	return shape
}
