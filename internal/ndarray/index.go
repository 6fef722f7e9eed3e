package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexKind identifies the form of an Index.
type IndexKind uint8

// Index kinds.
const (
	ScalarIndex IndexKind = iota
	RangeIndex
	ExplicitIndex
)

// Index selects positions along one axis: a single position, a half-open
// range with a positive step, or an explicit list of positions.
//
// Example:
//
//	a.Get(ndarray.Range(1, 3), ndarray.At(1)) // a[1:3, 1]
type Index struct {
	kind     IndexKind
	pos      int
	start    int
	stop     int
	step     int
	hasStart bool
	hasStop  bool
	list     []int
}

// At selects a single position. Negative positions count from the end.
func At(i int) Index {
	return Index{kind: ScalarIndex, pos: i}
}

// All selects the whole axis.
func All() Index {
	return Index{kind: RangeIndex, step: 1}
}

// Range selects [start, stop).
func Range(start, stop int) Index {
	return RangeStep(start, stop, 1)
}

// RangeStep selects every step-th position of [start, stop).
func RangeStep(start, stop, step int) Index {
	return Index{kind: RangeIndex, start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// From selects [start, end of axis).
func From(start int) Index {
	return Index{kind: RangeIndex, start: start, step: 1, hasStart: true}
}

// To selects [0, stop).
func To(stop int) Index {
	return Index{kind: RangeIndex, stop: stop, step: 1, hasStop: true}
}

// List selects the given positions in the given order.
func List(positions ...int) Index {
	return Index{kind: ExplicitIndex, list: append([]int(nil), positions...)}
}

// Kind returns the specifier form.
func (ix Index) Kind() IndexKind {
	return ix.kind
}

// String renders the specifier in slice notation.
func (ix Index) String() string {
	switch ix.kind {
	case ScalarIndex:
		return strconv.Itoa(ix.pos)
	case ExplicitIndex:
		parts := make([]string, len(ix.list))
		for i, p := range ix.list {
			parts[i] = strconv.Itoa(p)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	var b strings.Builder
	if ix.hasStart {
		b.WriteString(strconv.Itoa(ix.start))
	}
	b.WriteByte(':')
	if ix.hasStop {
		b.WriteString(strconv.Itoa(ix.stop))
	}
	if ix.step != 1 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(ix.step))
	}
	return b.String()
}

// ParseIndices parses a comma-separated index expression such as
// "1:3,1", ":,::2" or "[0 2],1:".
func ParseIndices(expr string) ([]Index, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	fields := strings.Split(expr, ",")
	out := make([]Index, 0, len(fields))
	for _, f := range fields {
		ix, err := parseIndex(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, ix)
	}
	return out, nil
}

func parseIndex(s string) (Index, error) {
	switch {
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		items := strings.FieldsFunc(s[1:len(s)-1], func(r rune) bool { return r == ' ' || r == ';' })
		list := make([]int, len(items))
		for i, item := range items {
			n, err := strconv.Atoi(item)
			if err != nil {
				return Index{}, fmt.Errorf("%w: %q", ErrIndexType, s)
			}
			list[i] = n
		}
		return List(list...), nil
	case strings.Contains(s, ":"):
		parts := strings.Split(s, ":")
		if len(parts) > 3 {
			return Index{}, fmt.Errorf("%w: %q", ErrIndexType, s)
		}
		ix := All()
		for i, p := range parts {
			if p == "" {
				continue
			}
			n, err := strconv.Atoi(p)
			if err != nil {
				return Index{}, fmt.Errorf("%w: %q", ErrIndexType, s)
			}
			switch i {
			case 0:
				ix.start, ix.hasStart = n, true
			case 1:
				ix.stop, ix.hasStop = n, true
			case 2:
				ix.step = n
			}
		}
		return ix, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Index{}, fmt.Errorf("%w: %q", ErrIndexType, s)
		}
		return At(n), nil
	}
}

// positions is a resolved index: either an arithmetic progression that is
// never materialized, or an explicit list.
type positions struct {
	start, step, n int
	list           []int
	explicit       bool
}

// Len returns the number of selected positions.
func (p positions) Len() int {
	if p.explicit {
		return len(p.list)
	}
	return p.n
}

// At returns the k-th selected position.
func (p positions) At(k int) int {
	if p.explicit {
		return p.list[k]
	}
	return p.start + k*p.step
}

// resolve converts an index specifier into concrete positions along an axis
// of the given size. Scalars are bounds-checked and wrapped; ranges are
// clamped to [0, size]; explicit lists are returned unchanged.
func resolve(ix Index, size int) (positions, error) {
	switch ix.kind {
	case ScalarIndex:
		i, err := wrapPosition(ix.pos, size)
		if err != nil {
			return positions{}, err
		}
		return positions{start: i, step: 1, n: 1}, nil
	case RangeIndex:
		if ix.step <= 0 {
			return positions{}, fmt.Errorf("%w: step %d (must be > 0)", ErrInvalidSlice, ix.step)
		}
		start, stop := 0, size
		if ix.hasStart {
			start = clampBound(ix.start, size)
		}
		if ix.hasStop {
			stop = clampBound(ix.stop, size)
		}
		n := 0
		if stop > start {
			n = (stop - start + ix.step - 1) / ix.step
		}
		return positions{start: start, step: ix.step, n: n}, nil
	case ExplicitIndex:
		return positions{list: ix.list, explicit: true}, nil
	default:
		return positions{}, fmt.Errorf("%w: kind %d", ErrIndexType, ix.kind)
	}
}

// wrapPosition validates -size <= i < size and maps negatives from the end.
func wrapPosition(i, size int) (int, error) {
	if i < -size || i >= size {
		return 0, fmt.Errorf("%w: %d for axis of size %d", ErrIndexOutOfRange, i, size)
	}
	if i < 0 {
		i += size
	}
	return i, nil
}

func clampBound(b, size int) int {
	if b < 0 {
		b += size
	}
	return max(0, min(b, size))
}
