package ndarray

import (
	"fmt"
	"math"
	"slices"
)

// Reduction names a statistical reduction.
type Reduction int

// Supported reductions.
const (
	Sum Reduction = iota
	Mean
	Var
	Std
	Min
	Max
)

// String returns the reduction name.
func (r Reduction) String() string {
	switch r {
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case Var:
		return "var"
	case Std:
		return "std"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "unknown"
	}
}

// ParseReduction maps a reduction name back to its Reduction.
func ParseReduction(name string) (Reduction, error) {
	for r := Sum; r <= Max; r++ {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReduction, name)
}

type reduceConfig struct {
	axis    int
	hasAxis bool
	ddof    int
}

// ReduceOption configures Reduce.
type ReduceOption func(*reduceConfig)

// WithAxis reduces along one axis instead of over the flattened array.
// Negative axes count from the end.
func WithAxis(axis int) ReduceOption {
	return func(c *reduceConfig) {
		c.axis = axis
		c.hasAxis = true
	}
}

// WithDDOF sets the degrees of freedom subtracted from the sample count by
// Var and Std. It defaults to 1 (sample variance).
func WithDDOF(ddof int) ReduceOption {
	return func(c *reduceConfig) {
		c.ddof = ddof
	}
}

// Reduce applies r over the whole array, yielding a scalar, or along the axis
// given by WithAxis, yielding an array with that axis removed. 1-D arrays
// always reduce to a scalar.
//
// Example:
//
//	a := ndarray.MustNew([][]int{{1, 2, 3}, {4, 5, 6}})
//	s, _ := a.Reduce(ndarray.Sum, ndarray.WithAxis(0)) // [5 7 9]
func (a *Array) Reduce(r Reduction, opts ...ReduceOption) (Selection, error) {
	cfg := reduceConfig{ddof: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	fn, err := reducer(r, cfg.ddof)
	if err != nil {
		return Selection{}, err
	}

	axis := cfg.axis
	if cfg.hasAxis {
		if axis < 0 {
			axis += a.NDim()
		}
		if axis < 0 || axis >= a.NDim() {
			return Selection{}, fmt.Errorf("%w: %d for %d-dimensional array", ErrInvalidAxis, cfg.axis, a.NDim())
		}
	}

	if !cfg.hasAxis || a.NDim() == 1 {
		v, err := fn(a.data)
		if err != nil {
			return Selection{}, fmt.Errorf("%s: %w", r, err)
		}
		return Selection{scalar: v}, nil
	}

	outShape := a.shape.without(axis)
	out := a.derive(outShape)
	lane := make([]Value, a.shape[axis])
	k := 0
	for coord := range outShape.Indices() {
		base := 0
		for d, c := range coord {
			src := d
			if d >= axis {
				src++
			}
			base += c * a.strides[src]
		}
		for j := range lane {
			lane[j] = a.data[base+j*a.strides[axis]]
		}
		v, err := fn(lane)
		if err != nil {
			return Selection{}, fmt.Errorf("%s at %v: %w", r, coord, err)
		}
		out.data[k] = v
		k++
	}
	return Selection{arr: out}, nil
}

// Sum adds the elements; see Reduce.
func (a *Array) Sum(opts ...ReduceOption) (Selection, error) {
	return a.Reduce(Sum, opts...)
}

// Mean averages the elements; see Reduce.
func (a *Array) Mean(opts ...ReduceOption) (Selection, error) {
	return a.Reduce(Mean, opts...)
}

// Var computes the variance with WithDDOF degrees of freedom; see Reduce.
func (a *Array) Var(opts ...ReduceOption) (Selection, error) {
	return a.Reduce(Var, opts...)
}

// Std computes the standard deviation, the square root of Var.
func (a *Array) Std(opts ...ReduceOption) (Selection, error) {
	return a.Reduce(Std, opts...)
}

// Min returns the smallest element; see Reduce.
func (a *Array) Min(opts ...ReduceOption) (Selection, error) {
	return a.Reduce(Min, opts...)
}

// Max returns the largest element; see Reduce.
func (a *Array) Max(opts ...ReduceOption) (Selection, error) {
	return a.Reduce(Max, opts...)
}

type reduceFunc func(xs []Value) (Value, error)

func reducer(r Reduction, ddof int) (reduceFunc, error) {
	switch r {
	case Sum:
		return sumOf, nil
	case Mean:
		return meanOf, nil
	case Var:
		return func(xs []Value) (Value, error) { return varOf(xs, ddof) }, nil
	case Std:
		return func(xs []Value) (Value, error) {
			v, err := varOf(xs, ddof)
			if err != nil || v.IsNaN() {
				return v, err
			}
			return NumberValue(math.Sqrt(v.num)), nil
		}, nil
	case Min:
		return extremum(-1), nil
	case Max:
		return extremum(1), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownReduction, int(r))
	}
}

func sumOf(xs []Value) (Value, error) {
	acc := NumberValue(0)
	for _, x := range xs {
		var err error
		if acc, err = addValues(acc, x); err != nil {
			return Value{}, err
		}
	}
	return acc, nil
}

func meanOf(xs []Value) (Value, error) {
	if len(xs) == 0 {
		return Value{}, ErrEmptyReduction
	}
	s, err := sumOf(xs)
	if err != nil || s.IsNaN() {
		return s, err
	}
	return NumberValue(s.num / float64(len(xs))), nil
}

// varOf sums squared deviations from the mean and divides by n - ddof.
func varOf(xs []Value, ddof int) (Value, error) {
	if len(xs) == 0 {
		return Value{}, ErrEmptyReduction
	}
	if len(xs)-ddof <= 0 {
		return Value{}, fmt.Errorf("%w: n=%d ddof=%d", ErrDegreesOfFreedom, len(xs), ddof)
	}
	m, err := meanOf(xs)
	if err != nil || m.IsNaN() {
		return m, err
	}
	ss := 0.0
	for _, x := range xs {
		f, _ := x.Float()
		ss += (f - m.num) * (f - m.num)
	}
	return NumberValue(ss / float64(len(xs)-ddof)), nil
}

// extremum keeps the element whose comparison against the current best has
// the given sign. NaN propagates.
func extremum(sign int) reduceFunc {
	return func(xs []Value) (Value, error) {
		if len(xs) == 0 {
			return Value{}, ErrEmptyReduction
		}
		best := xs[0]
		for _, x := range xs {
			if x.IsNaN() {
				return NaN, nil
			}
			cmp, _, err := compareValues(x, best)
			if err != nil {
				return Value{}, err
			}
			if cmp == sign {
				best = x
			}
		}
		return best, nil
	}
}

// ArgMax returns the row-major position of the first largest element,
// ignoring NaN.
func (a *Array) ArgMax() (int, error) {
	return a.argExtremum(1)
}

// ArgMin returns the row-major position of the first smallest element,
// ignoring NaN.
func (a *Array) ArgMin() (int, error) {
	return a.argExtremum(-1)
}

func (a *Array) argExtremum(sign int) (int, error) {
	best := -1
	for i, x := range a.data {
		if x.IsNaN() {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		cmp, _, err := compareValues(x, a.data[best])
		if err != nil {
			return 0, err
		}
		if cmp == sign {
			best = i
		}
	}
	if best < 0 {
		return 0, ErrEmptyReduction
	}
	return best, nil
}

// ArgSort returns the positions that sort a 1-D array ascending. For 2-D
// arrays it sorts column i when axis is 0, or row i when axis is 1. The
// sort is stable and NaN sorts last.
func (a *Array) ArgSort(axis, i int) ([]int, error) {
	var lane *Array
	switch {
	case a.NDim() == 1:
		lane = a
	case a.NDim() == 2 && (axis == 0 || axis == 1):
		idx := []Index{All(), At(i)}
		if axis == 1 {
			idx = []Index{At(i), All()}
		}
		pos, err := a.resolveAll(idx)
		if err != nil {
			return nil, err
		}
		lane = a.gather(pos)
	default:
		return nil, fmt.Errorf("%w: argsort axis %d on %d-dimensional array", ErrInvalidAxis, axis, a.NDim())
	}

	order := make([]int, lane.NumElements())
	for k := range order {
		order[k] = k
	}
	var sortErr error
	slices.SortStableFunc(order, func(x, y int) int {
		vx, vy := lane.data[x], lane.data[y]
		switch {
		case vx.IsNaN() && vy.IsNaN():
			return 0
		case vx.IsNaN():
			return 1
		case vy.IsNaN():
			return -1
		}
		cmp, _, err := compareValues(vx, vy)
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return cmp
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return order, nil
}
