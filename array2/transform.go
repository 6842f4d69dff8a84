// SPDX-License-Identifier: MIT

package array2

import "fmt"

// Map builds a new Array2[U] of identical shape whose element (r,c) is
// f(a.At(r,c)). The source grid is never modified.
//
// Implementation:
//   - Stage 1: reject nil inputs.
//   - Stage 2: allocate the result buffer once.
//   - Stage 3: apply f per element; the first failure aborts.
//
// Behavior highlights:
//   - All-or-nothing: on failure the partial result is discarded and the
//     error from f is returned wrapped with the failing coordinate.
//   - Elements are visited in row-major order, but callers must not rely on
//     any ordering between calls of f.
//
// Complexity:
//   - Time O(rows*cols) calls of f, Space O(rows*cols).
func Map[T, U any](a *Array2[T], f func(T) (U, error)) (*Array2[U], error) {
	if a == nil || f == nil {
		return nil, fmt.Errorf("array2.%s: %w", ctxMap, ErrNilFunc)
	}
	data := make([]U, len(a.data))
	var (
		v   U
		err error
	)
	for i := range a.data {
		if v, err = f(a.data[i]); err != nil {
			return nil, fmt.Errorf("array2.%s(%d,%d): %w", ctxMap, i/a.cols, i%a.cols, err)
		}
		data[i] = v
	}

	return &Array2[U]{rows: a.rows, cols: a.cols, data: data}, nil
}

// MapIndexed is the infallible, coordinate-aware form of Map:
// element (r,c) of the result is f(r, c, a.At(r,c)).
func MapIndexed[T, U any](a *Array2[T], f func(r, c int, v T) U) (*Array2[U], error) {
	if a == nil || f == nil {
		return nil, fmt.Errorf("array2.MapIndexed: %w", ErrNilFunc)
	}
	data := make([]U, len(a.data))
	var r, c, base int
	for r = 0; r < a.rows; r++ {
		base = r * a.cols
		for c = 0; c < a.cols; c++ {
			data[base+c] = f(r, c, a.data[base+c])
		}
	}

	return &Array2[U]{rows: a.rows, cols: a.cols, data: data}, nil
}

// Transpose returns a new cols×rows grid with element (c,r) = a(r,c).
func Transpose[T any](a *Array2[T]) *Array2[T] {
	data := make([]T, len(a.data))
	var r, c int
	for r = 0; r < a.rows; r++ {
		for c = 0; c < a.cols; c++ {
			data[c*a.rows+r] = a.data[r*a.cols+c]
		}
	}

	return &Array2[T]{rows: a.cols, cols: a.rows, data: data}
}
