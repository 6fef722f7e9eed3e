// Copyright 2025 The dataclassic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"testing"

	"github.com/dataclassic/dataclassic/ndarray"
)

// TestArrayAPI verifies the Array alias exposes the expected API.
func TestArrayAPI(t *testing.T) {
	a, err := ndarray.New([][]int{{1, 2, 3}, {4, 5, 6}}, ndarray.WithName("m"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !a.Shape().Equal(ndarray.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", a.Shape())
	}
	if a.NDim() != 2 {
		t.Errorf("NDim() = %d, want 2", a.NDim())
	}
	if a.Name() != "m" {
		t.Errorf("Name() = %q, want m", a.Name())
	}

	sel, err := a.Get(ndarray.Range(0, 2), ndarray.At(1))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if sel.IsScalar() {
		t.Fatal("Get(0:2, 1) returned a scalar")
	}
	if got := sel.Array().Shape(); !got.Equal(ndarray.Shape{2}) {
		t.Errorf("Get(0:2, 1) shape = %v, want [2]", got)
	}

	sum, err := a.Sum(ndarray.WithAxis(0))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	want := []float64{5, 7, 9}
	i := 0
	for v := range sum.Array().Values() {
		if f, _ := v.Float(); f != want[i] {
			t.Errorf("Sum(axis 0)[%d] = %v, want %v", i, f, want[i])
		}
		i++
	}
}

// TestErrorsAreShared verifies that errors from the engine match the exported sentinels.
func TestErrorsAreShared(t *testing.T) {
	_, err := ndarray.New(nil)
	if !errors.Is(err, ndarray.ErrNoData) {
		t.Errorf("New(nil) error = %v, want ErrNoData", err)
	}

	strict := ndarray.MustNew([]int{1}, ndarray.WithAllowNaN(false))
	if _, err := strict.Div(0); !errors.Is(err, ndarray.ErrDivisionByZero) {
		t.Errorf("Div(0) error = %v, want ErrDivisionByZero", err)
	}

	if _, err := strict.Get(ndarray.At(3)); !errors.Is(err, ndarray.ErrIndexOutOfRange) {
		t.Errorf("Get(3) error = %v, want ErrIndexOutOfRange", err)
	}
}

// TestValueKinds verifies the Value constructors and kinds.
func TestValueKinds(t *testing.T) {
	tests := []struct {
		v    ndarray.Value
		kind ndarray.Kind
	}{
		{ndarray.NumberValue(1), ndarray.KindNumber},
		{ndarray.StringValue("a"), ndarray.KindString},
		{ndarray.BoolValue(true), ndarray.KindBool},
		{ndarray.NaN, ndarray.KindNaN},
	}
	for _, tt := range tests {
		if tt.v.Kind() != tt.kind {
			t.Errorf("%v.Kind() = %v, want %v", tt.v, tt.v.Kind(), tt.kind)
		}
	}
}

// TestPackageFunctions verifies the function forms of the manipulation API.
func TestPackageFunctions(t *testing.T) {
	eye, err := ndarray.Eye(2)
	if err != nil {
		t.Fatalf("Eye failed: %v", err)
	}
	tr, err := ndarray.Transpose(eye)
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	eq, err := tr.Eq(eye)
	if err != nil {
		t.Fatalf("Eq failed: %v", err)
	}
	if !eq.All() {
		t.Error("identity is not its own transpose")
	}

	joined, err := ndarray.Append(eye, [][]int{{7, 7}}, 0)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if !joined.Shape().Equal(ndarray.Shape{3, 2}) {
		t.Errorf("Append shape = %v, want [3 2]", joined.Shape())
	}

	trimmed, err := ndarray.Delete(joined, []int{2}, 0)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !trimmed.Shape().Equal(ndarray.Shape{2, 2}) {
		t.Errorf("Delete shape = %v, want [2 2]", trimmed.Shape())
	}

	flat, err := ndarray.DeleteFlat(eye, []int{0})
	if err != nil {
		t.Fatalf("DeleteFlat failed: %v", err)
	}
	if flat.NumElements() != 3 {
		t.Errorf("DeleteFlat kept %d elements, want 3", flat.NumElements())
	}

	z, err := ndarray.Zeros(2, 2)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	if z.Any() {
		t.Error("Zeros has a truthy element")
	}
}

// TestMultiRange verifies coordinate enumeration order.
func TestMultiRange(t *testing.T) {
	var got [][2]int
	for idx := range ndarray.MultiRange(2, 2) {
		got = append(got, [2]int{idx[0], idx[1]})
	}
	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if len(got) != len(want) {
		t.Fatalf("MultiRange(2, 2) yielded %d coordinates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coordinate %d = %v, want %v", i, got[i], want[i])
		}
	}
}
