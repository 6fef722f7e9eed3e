// Copyright 2025 The dataclassic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides an in-memory N-dimensional array value type.
//
// # Overview
//
// An Array holds a rectangular nesting of numbers, strings and booleans, plus
// the NaN marker. It supports:
//   - Construction from nested slices, another Array, a scalar, or a shape and fill value
//   - Multi-axis indexing with positions, ranges and explicit lists (Get/Set)
//   - Elementwise arithmetic and comparisons against a scalar or a same-shaped operand
//   - Reductions (sum, mean, var, std, min, max) over the whole array or one axis
//   - Transpose, Reshape and Flatten
//
// # Basic Usage
//
//	a, err := ndarray.New([][]int{{1, 2, 3}, {4, 5, 6}})
//	if err != nil {
//	    return err
//	}
//	col, _ := a.Get(ndarray.All(), ndarray.At(1))  // [2 5]
//	sums, _ := a.Sum(ndarray.WithAxis(0))          // [5 7 9]
//	scaled, _ := a.Mul(10)
//	t := a.Transpose()                             // shape [3 2]
//
// # Indexing
//
// Get takes one Index per leading axis; omitted axes are selected whole.
// Selecting a single position on every axis yields a scalar Selection.
// Otherwise the result is a new Array: axes indexed with At are dropped, then
// a leading and a trailing axis of size 1 are dropped while more than one axis
// remains.
//
//	a.Get(ndarray.Range(1, 3), ndarray.At(1))  // a[1:3, 1]
//	a.Get(ndarray.List(0, 2), ndarray.From(1)) // a[[0, 2], 1:]
//
// Set is the only operation that mutates an Array. The right-hand side is a
// scalar, broadcast over the region, or a value whose shape matches the region.
//
// # NaN
//
// Division by zero yields NaN when the array allows it (the default, see
// WithAllowNaN) and fails with ErrDivisionByZero otherwise. NaN never equals
// anything, itself included.
//
// # Concurrency
//
// Arrays are plain values without internal locking. Callers that share an
// Array between goroutines must serialize access.
package ndarray
