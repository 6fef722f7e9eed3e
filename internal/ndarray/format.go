package ndarray

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
)

const cellWidth = 10

// String renders the array for display. 1-D arrays print as
// "array([...])"; higher ranks print one bracketed line per innermost row,
// preceded by an "Indexes=[...]" header whenever the outer coordinates change.
func (a *Array) String() string {
	return a.Format(func(v Value) string { return v.String() })
}

// Format renders the array like String, using cell to turn each element into
// text before it is right-aligned.
func (a *Array) Format(cell func(Value) string) string {
	if len(a.shape) == 0 {
		return "[]"
	}
	last := a.shape[len(a.shape)-1]
	row := func(base int) string {
		cells := make([]string, last)
		for j := range cells {
			cells[j] = pad(cell(a.data[base+j]))
		}
		return strings.Join(cells, " ")
	}

	if a.NDim() == 1 {
		return "array([" + row(0) + "])"
	}

	var (
		lines []string
		prev  []int
	)
	outer := a.shape[:len(a.shape)-1]
	k := 0
	for coord := range outer.Indices() {
		if len(coord) > 1 && !intsEqual(coord[:len(coord)-1], prev) {
			prev = append(prev[:0], coord[:len(coord)-1]...)
			lines = append(lines, "Indexes="+formatInts(prev))
		}
		lines = append(lines, "["+row(k*last)+"]")
		k++
	}
	if len(lines) == 0 {
		return "[]"
	}
	return strings.Join(lines, "\n")
}

// pad right-aligns s to the cell width, counting runes rather than bytes so
// that escape sequences added by callers are not measured.
func pad(s string) string {
	visible := len([]rune(stripANSI(s)))
	if visible >= cellWidth {
		return s
	}
	return strings.Repeat(" ", cellWidth-visible) + s
}

func stripANSI(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	var b strings.Builder
	skip := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			skip = true
		case skip && r == 'm':
			skip = false
		case !skip:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the nested form; NaN becomes null.
func (a *Array) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(a.ToNested())
}

// UnmarshalJSON decodes nested JSON arrays; null becomes NaN.
func (a *Array) UnmarshalJSON(b []byte) error {
	var v any
	if err := gojson.Unmarshal(b, &v); err != nil {
		return err
	}
	return a.assign(v)
}

// MarshalYAML returns the nested form for YAML encoders.
func (a *Array) MarshalYAML() (any, error) {
	return a.ToNested(), nil
}

// UnmarshalYAML decodes a YAML sequence through the encoder-supplied callback.
func (a *Array) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	return a.assign(v)
}

func (a *Array) assign(v any) error {
	decoded, err := New(v)
	if err != nil {
		return err
	}
	allow, name := true, a.name
	if a.shape != nil {
		allow = a.allowNaN
	}
	*a = *decoded
	a.allowNaN, a.name = allow, name
	return nil
}
