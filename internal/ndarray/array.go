package ndarray

import (
	"fmt"
)

// Array is a rectangular N-dimensional array of Values stored in row-major
// order. Every operation except Set returns a new Array.
type Array struct {
	data     []Value
	shape    Shape
	strides  []int
	allowNaN bool
	name     string
}

type config struct {
	shape    Shape
	fill     any
	allowNaN *bool
	name     *string
}

// Option configures New.
type Option func(*config)

// WithShape allocates an array of the given shape when New receives no data.
func WithShape(dims ...int) Option {
	return func(c *config) {
		c.shape = Shape(dims).Clone()
	}
}

// WithFill sets the value used by WithShape. It defaults to 0.
func WithFill(v any) Option {
	return func(c *config) {
		c.fill = v
	}
}

// WithAllowNaN controls whether division by zero yields NaN (true, the
// default) or an ErrDivisionByZero error.
func WithAllowNaN(allow bool) Option {
	return func(c *config) {
		c.allowNaN = &allow
	}
}

// WithName attaches a display label.
func WithName(name string) Option {
	return func(c *config) {
		c.name = &name
	}
}

// New builds an array from data, which may be another *Array (deep copied),
// a scalar (wrapped as a one-element 1-D array) or nested slices of any
// depth. With nil data the array is allocated from WithShape and WithFill.
//
// Example:
//
//	a, err := ndarray.New([][]int{{1, 2, 3}, {4, 5, 6}})
//	z, err := ndarray.New(nil, ndarray.WithShape(2, 3), ndarray.WithFill(0))
func New(data any, opts ...Option) (*Array, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		a   *Array
		err error
	)
	switch d := data.(type) {
	case nil:
		if cfg.shape == nil {
			return nil, ErrNoData
		}
		a, err = Full(cfg.shape, cfg.fill)
	case *Array:
		if d == nil {
			return nil, ErrNoData
		}
		a = d.Clone()
	default:
		if isScalar(data) {
			v, _ := ValueOf(data)
			a = fromFlat(Shape{1}, []Value{v})
			break
		}
		a, err = fromNested(data)
	}
	if err != nil {
		return nil, err
	}

	if cfg.allowNaN != nil {
		a.allowNaN = *cfg.allowNaN
	}
	if cfg.name != nil {
		a.name = *cfg.name
	}
	return a, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(data any, opts ...Option) *Array {
	a, err := New(data, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Full allocates an array of the given shape with every element set to fill.
//
// Example:
//
//	a, err := ndarray.Full(ndarray.Shape{3, 3}, 1)
func Full(shape Shape, fill any) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	v, err := ValueOf(fill)
	if err != nil {
		return nil, err
	}
	if fill == nil {
		v = NumberValue(0)
	}
	a := newArray(shape)
	for i := range a.data {
		a.data[i] = v
	}
	return a, nil
}

// Zeros allocates an array of the given dimensions filled with 0.
func Zeros(dims ...int) (*Array, error) {
	return Full(Shape(dims), 0)
}

// newArray allocates a zero-filled array; shape must be valid.
func newArray(shape Shape) *Array {
	return fromFlat(shape, make([]Value, shape.NumElements()))
}

// fromFlat wraps row-major data without copying it.
func fromFlat(shape Shape, data []Value) *Array {
	return &Array{
		data:     data,
		shape:    shape.Clone(),
		strides:  shape.ComputeStrides(),
		allowNaN: true,
	}
}

// derive allocates a result that carries a's NaN policy and name.
func (a *Array) derive(shape Shape) *Array {
	out := newArray(shape)
	out.allowNaN = a.allowNaN
	out.name = a.name
	return out
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Len returns the size of the outermost axis.
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return len(a.data)
}

// AllowNaN reports the division-by-zero policy.
func (a *Array) AllowNaN() bool {
	return a.allowNaN
}

// Name returns the display label.
func (a *Array) Name() string {
	return a.name
}

// SetName replaces the display label.
func (a *Array) SetName(name string) {
	a.name = name
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]Value, len(a.data))
	copy(data, a.data)
	return &Array{
		data:     data,
		shape:    a.shape.Clone(),
		strides:  append([]int(nil), a.strides...),
		allowNaN: a.allowNaN,
		name:     a.name,
	}
}

// At returns the element at the given coordinates; negative coordinates
// count from the end of their axis.
func (a *Array) At(coords ...int) (Value, error) {
	off, err := a.offset(coords)
	if err != nil {
		return Value{}, err
	}
	return a.data[off], nil
}

func (a *Array) offset(coords []int) (int, error) {
	if len(coords) != len(a.shape) {
		return 0, fmt.Errorf("%w: expected %d coordinates, got %d", ErrIndexOutOfRange, len(a.shape), len(coords))
	}
	off := 0
	for d, c := range coords {
		i, err := wrapPosition(c, a.shape[d])
		if err != nil {
			return 0, fmt.Errorf("axis %d: %w", d, err)
		}
		off += i * a.strides[d]
	}
	return off, nil
}

// ToNested converts the array back into nested []any slices whose leaves are
// float64, string, bool, or nil for NaN. The zero Array converts to nil.
func (a *Array) ToNested() []any {
	if len(a.shape) == 0 {
		return nil
	}
	var build func(depth, base int) []any
	build = func(depth, base int) []any {
		out := make([]any, a.shape[depth])
		for i := range out {
			off := base + i*a.strides[depth]
			if depth == len(a.shape)-1 {
				out[i] = a.data[off].Interface()
			} else {
				out[i] = build(depth+1, off)
			}
		}
		return out
	}
	return build(0, 0)
}
