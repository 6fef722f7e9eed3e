package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromNested(t *testing.T) {
	a, err := New([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, 2, a.NDim())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 6, a.NumElements())
	assert.True(t, a.AllowNaN())
	assert.Equal(t, []any{[]any{1.0, 2.0, 3.0}, []any{4.0, 5.0, 6.0}}, a.ToNested())
}

func TestNewMixedKinds(t *testing.T) {
	a, err := New([]any{1, "x", true, nil})
	require.NoError(t, err)
	assert.Equal(t, Shape{4}, a.Shape())
	assert.Equal(t, []any{1.0, "x", true, nil}, a.ToNested())

	v, err := a.At(3)
	require.NoError(t, err)
	assert.True(t, v.IsNaN())
}

func TestNewTypedDeepNesting(t *testing.T) {
	data := [][][]float32{
		{{1, 2}, {3, 4}, {5, 6}},
		{{7, 8}, {9, 10}, {11, 12}},
	}
	a, err := New(data)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 2}, a.Shape())

	v, err := a.At(1, 2, 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(NumberValue(11)))
}

func TestNewFixedSizeArrays(t *testing.T) {
	a, err := New([2][2]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, a.Shape())
}

func TestNewScalar(t *testing.T) {
	for _, x := range []any{3, 2.5, "s", false, NumberValue(1)} {
		a, err := New(x)
		require.NoError(t, err)
		assert.Equal(t, Shape{1}, a.Shape())
	}
}

func TestNewCopiesArray(t *testing.T) {
	src := MustNew([]int{1, 2, 3}, WithName("src"), WithAllowNaN(false))
	cp, err := New(src)
	require.NoError(t, err)
	assert.Equal(t, "src", cp.Name())
	assert.False(t, cp.AllowNaN())

	require.NoError(t, cp.Set(9, At(0)))
	v, err := src.At(0)
	require.NoError(t, err)
	assert.True(t, v.Equal(NumberValue(1)), "copy must not alias the source")

	renamed, err := New(src, WithName("other"))
	require.NoError(t, err)
	assert.Equal(t, "other", renamed.Name())
}

func TestNewNestedArrays(t *testing.T) {
	a, err := New([]any{MustNew([]int{1, 2}), MustNew([]int{3, 4})})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, a.Shape())
}

func TestNewRequiresDataOrShape(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoData)

	var nilArr *Array
	_, err = New(nilArr)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNewRagged(t *testing.T) {
	_, err := New([]any{[]any{1, 2}, []any{3}})
	assert.ErrorIs(t, err, ErrRagged)

	_, err = New([]any{[]any{1, 2}, 3})
	assert.ErrorIs(t, err, ErrRagged)

	_, err = New([]any{1, []any{2, 3}})
	assert.ErrorIs(t, err, ErrRagged)
}

func TestNewUnsupportedElement(t *testing.T) {
	_, err := New([]any{1, struct{}{}})
	assert.ErrorIs(t, err, ErrType)

	_, err = New(map[string]int{"a": 1})
	assert.ErrorIs(t, err, ErrType)
}

func TestNewEmpty(t *testing.T) {
	a, err := New([]int{})
	require.NoError(t, err)
	assert.Equal(t, Shape{0}, a.Shape())

	b, err := New([][]int{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 0}, b.Shape())
}

func TestNewWithShapeFill(t *testing.T) {
	shapes := []Shape{{3}, {2, 3}, {2, 1, 4}, {2, 2, 2, 2}}
	for _, shape := range shapes {
		a, err := New(nil, WithShape(shape...), WithFill(7))
		require.NoError(t, err)
		assert.Equal(t, shape, a.Shape())
		for v := range a.Values() {
			assert.True(t, v.Equal(NumberValue(7)))
		}
	}

	z, err := New(nil, WithShape(2))
	require.NoError(t, err)
	assert.Equal(t, []any{0.0, 0.0}, z.ToNested())
}

func TestFullDoesNotShareLeaves(t *testing.T) {
	a, err := Full(Shape{2, 2}, "x")
	require.NoError(t, err)
	require.NoError(t, a.Set("y", At(0), At(0)))
	assert.Equal(t, []any{[]any{"y", "x"}, []any{"x", "x"}}, a.ToNested())
}

func TestFullInvalid(t *testing.T) {
	_, err := Full(Shape{2, -1}, 0)
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = Full(Shape{2}, struct{}{})
	assert.ErrorIs(t, err, ErrType)
}

func TestAtBounds(t *testing.T) {
	a := MustNew([][]int{{1, 2}, {3, 4}})
	v, err := a.At(-1, -1)
	require.NoError(t, err)
	assert.True(t, v.Equal(NumberValue(4)))

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.At(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNestedRoundTrip(t *testing.T) {
	data := []any{
		[]any{[]any{1.0, 2.0}, []any{3.0, 4.0}},
		[]any{[]any{5.0, 6.0}, []any{7.0, 8.0}},
	}
	a := MustNew(data)
	flat := a.Flatten()
	back, err := flat.Reshape(a.Shape(), 0)
	require.NoError(t, err)
	assert.Equal(t, data, back.ToNested())
}

func TestValueSemantics(t *testing.T) {
	assert.False(t, NaN.Equal(NaN))
	assert.False(t, NaN.Truthy())
	assert.True(t, NumberValue(1).Equal(BoolValue(true)))
	assert.False(t, StringValue("1").Equal(NumberValue(1)))
	assert.Equal(t, "3", NumberValue(3).String())
	assert.Equal(t, "0.5", NumberValue(0.5).String())
	assert.Equal(t, "NaN", NaN.String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, KindString, StringValue("a").Kind())
	assert.Equal(t, "nan", KindNaN.String())

	f, ok := BoolValue(true).Float()
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)
	_, ok = StringValue("a").Float()
	assert.False(t, ok)
	s, ok := StringValue("a").Text()
	assert.True(t, ok)
	assert.Equal(t, "a", s)
}

func TestValueOf(t *testing.T) {
	v, err := ValueOf(int64(4))
	require.NoError(t, err)
	assert.True(t, v.Equal(NumberValue(4)))

	v, err = ValueOf(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNaN())

	_, err = ValueOf([]int{1})
	assert.ErrorIs(t, err, ErrType)
}
