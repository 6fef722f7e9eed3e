package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := MustNew([]int{1, 2, 3})
	tests := []struct {
		name string
		op   func() (*Array, error)
		want []any
	}{
		{"add scalar", func() (*Array, error) { return a.Add(1) }, []any{2.0, 3.0, 4.0}},
		{"add nested", func() (*Array, error) { return a.Add([]int{10, 20, 30}) }, []any{11.0, 22.0, 33.0}},
		{"add array", func() (*Array, error) { return a.Add(MustNew([]float64{0.5, 0.5, 0.5})) }, []any{1.5, 2.5, 3.5}},
		{"sub", func() (*Array, error) { return a.Sub(1) }, []any{0.0, 1.0, 2.0}},
		{"mul", func() (*Array, error) { return a.Mul(2) }, []any{2.0, 4.0, 6.0}},
		{"div", func() (*Array, error) { return a.Div(2) }, []any{0.5, 1.0, 1.5}},
		{"pow", func() (*Array, error) { return a.Pow(2) }, []any{1.0, 4.0, 9.0}},
		{"neg", a.Neg, []any{-1.0, -2.0, -3.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ToNested())
		})
	}
	assert.Equal(t, []any{1.0, 2.0, 3.0}, a.ToNested(), "operands are not modified")
}

func TestDivisionByZeroPolicy(t *testing.T) {
	x := MustNew([]int{1, 2, 0})

	got, err := x.Div([]int{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, nil, nil}, got.ToNested())
	assert.True(t, got.AllowNaN())

	strict := MustNew([]int{1, 2, 0}, WithAllowNaN(false))
	_, err = strict.Div([]int{1, 0, 0})
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Contains(t, err.Error(), "at [1]")

	_, err = strict.Mod(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = MustNew([]int{0}, WithAllowNaN(false)).Pow(-1)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	got, err = MustNew([]int{0}).Pow(-1)
	require.NoError(t, err)
	assert.Equal(t, []any{nil}, got.ToNested())
}

func TestModTakesDivisorSign(t *testing.T) {
	got, err := MustNew([]int{-1, 5, 7}).Mod([]int{3, -3, 2})
	require.NoError(t, err)
	assert.Equal(t, []any{2.0, -1.0, 1.0}, got.ToNested())
}

func TestAbsAndRound(t *testing.T) {
	got, err := MustNew([]float64{-1.5, 2}).Abs()
	require.NoError(t, err)
	assert.Equal(t, []any{1.5, 2.0}, got.ToNested())

	got, err = MustNew([]float64{2.5, 3.5, -2.5, 1.2}).Round(0)
	require.NoError(t, err)
	assert.Equal(t, []any{2.0, 4.0, -2.0, 1.0}, got.ToNested())

	got, err = MustNew([]float64{0.125}).Round(2)
	require.NoError(t, err)
	assert.Equal(t, []any{0.12}, got.ToNested())

	_, err = MustNew([]string{"a"}).Round(1)
	assert.ErrorIs(t, err, ErrType)
}

func TestNaNPropagates(t *testing.T) {
	a := MustNew([]any{nil, 2})
	got, err := a.Add(1)
	require.NoError(t, err)
	assert.Equal(t, []any{nil, 3.0}, got.ToNested())

	got, err = a.Neg()
	require.NoError(t, err)
	assert.Equal(t, []any{nil, -2.0}, got.ToNested())
}

func TestComparisons(t *testing.T) {
	a := MustNew([]int{1, 2, 3})
	tests := []struct {
		name string
		op   func(any) (*Array, error)
		rhs  any
		want []any
	}{
		{"gt", a.Gt, 2, []any{false, false, true}},
		{"ge", a.Ge, 2, []any{false, true, true}},
		{"lt", a.Lt, 2, []any{true, false, false}},
		{"le", a.Le, 2, []any{true, true, false}},
		{"eq", a.Eq, []int{1, 0, 3}, []any{true, false, true}},
		{"ne", a.Ne, []int{1, 0, 3}, []any{false, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.rhs)
			require.NoError(t, err)
			assert.Equal(t, Shape{3}, got.Shape())
			assert.Equal(t, tt.want, got.ToNested())
		})
	}
}

func TestComparisonsWithNaN(t *testing.T) {
	a := MustNew([]any{nil, 1})
	got, err := a.Eq([]any{nil, 1})
	require.NoError(t, err)
	assert.Equal(t, []any{false, true}, got.ToNested())

	got, err = a.Lt(5)
	require.NoError(t, err)
	assert.Equal(t, []any{false, true}, got.ToNested())
}

func TestStrings(t *testing.T) {
	s := MustNew([]string{"a", "b"})
	got, err := s.Add("x")
	require.NoError(t, err)
	assert.Equal(t, []any{"ax", "bx"}, got.ToNested())

	got, err = s.Lt("b")
	require.NoError(t, err)
	assert.Equal(t, []any{true, false}, got.ToNested())

	_, err = s.Lt(1)
	assert.ErrorIs(t, err, ErrType)
	_, err = s.Sub("a")
	assert.ErrorIs(t, err, ErrType)
	_, err = MustNew([]int{1}).Mul("x")
	assert.ErrorIs(t, err, ErrType)
}

func TestBooleansAreNumeric(t *testing.T) {
	got, err := MustNew([]bool{true, false}).Add(1)
	require.NoError(t, err)
	assert.Equal(t, []any{2.0, 1.0}, got.ToNested())
}

func TestLogical(t *testing.T) {
	a := MustNew([]any{true, 0, "s"})
	got, err := a.And([]any{1, true, ""})
	require.NoError(t, err)
	assert.Equal(t, []any{true, false, false}, got.ToNested())

	got, err = a.Or([]any{1, true, ""})
	require.NoError(t, err)
	assert.Equal(t, []any{true, true, true}, got.ToNested())

	assert.True(t, MustNew([]any{1, true, "x"}).All())
	assert.False(t, MustNew([]any{1, 0}).All())
	assert.True(t, MustNew([]any{0, "x"}).Any())
	assert.False(t, MustNew([]any{0, "", nil}).Any())
}

func TestOperandShapeMismatch(t *testing.T) {
	a := MustNew([][]int{{1, 2}, {3, 4}})
	_, err := a.Add([]int{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = a.Add([]any{[]any{1, 2}, []any{3}})
	assert.ErrorIs(t, err, ErrRagged)

	got, err := a.Mul([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1.0, 0.0}, []any{0.0, 4.0}}, got.ToNested())
}

func TestResultKeepsMetadata(t *testing.T) {
	a := MustNew([]int{1}, WithName("x"), WithAllowNaN(false))
	got, err := a.Add(1)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name())
	assert.False(t, got.AllowNaN())
}
