package ndarray

import (
	"fmt"
	"reflect"
)

// fromNested builds an array from nested slices or arrays. The shape is
// inferred by descending through the first element of each level, then every
// level is checked against it.
func fromNested(data any) (*Array, error) {
	root := unwrapElem(reflect.ValueOf(data))
	if !isSequence(root) {
		return nil, fmt.Errorf("%w: %T", ErrType, data)
	}

	var shape Shape
	for cur := root; isSequence(cur); {
		shape = append(shape, cur.Len())
		if cur.Len() == 0 {
			break
		}
		cur = unwrapElem(cur.Index(0))
	}

	out := make([]Value, 0, shape.NumElements())
	out, err := collect(root, shape, 0, nil, out)
	if err != nil {
		return nil, err
	}
	return fromFlat(shape, out), nil
}

func collect(rv reflect.Value, shape Shape, depth int, path []int, out []Value) ([]Value, error) {
	if depth == len(shape) {
		if isSequence(rv) {
			return nil, fmt.Errorf("%w: unexpected nesting at %v", ErrRagged, path)
		}
		if !rv.IsValid() {
			return append(out, NaN), nil
		}
		v, err := ValueOf(rv.Interface())
		if err != nil {
			return nil, fmt.Errorf("element %v: %w", path, err)
		}
		return append(out, v), nil
	}

	if !isSequence(rv) {
		return nil, fmt.Errorf("%w: scalar at %v where %d axes were expected", ErrRagged, path, len(shape)-depth)
	}
	if rv.Len() != shape[depth] {
		return nil, fmt.Errorf("%w: length %d at %v, expected %d", ErrRagged, rv.Len(), path, shape[depth])
	}

	var err error
	for i := range rv.Len() {
		out, err = collect(unwrapElem(rv.Index(i)), shape, depth+1, append(path, i), out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// unwrapElem looks through interfaces and replaces nested arrays with their
// nested slice form.
func unwrapElem(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	if rv.IsValid() && rv.CanInterface() {
		if arr, ok := rv.Interface().(*Array); ok && arr != nil {
			return reflect.ValueOf(arr.ToNested())
		}
	}
	return rv
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
