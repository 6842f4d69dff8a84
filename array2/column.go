// SPDX-License-Identifier: MIT

package array2

import (
	"fmt"
	"iter"
)

// Column is a strided, non-copying view of one column of an Array2.
// Element i lives at data[start + i*stride] of the owning grid, so reads see
// later writes to the grid and writes through Set land in the grid.
// The grid buffer is never relocated, so the view stays valid for the grid's
// lifetime.
type Column[T any] struct {
	data   []T // the owning grid's buffer
	start  int // offset of element 0 (the column index)
	stride int // distance between consecutive elements (the grid's cols)
	n      int // number of elements (the grid's rows)
}

// Column returns a strided view of column c.
// Errors: ErrIndexOutOfBounds when c∉[0,cols).
// Complexity: O(1); no copy is made.
func (a *Array2[T]) Column(c int) (Column[T], error) {
	if c < 0 || c >= a.cols {
		return Column[T]{}, arrayErrorf(ctxColumn, 0, c, ErrIndexOutOfBounds)
	}

	return Column[T]{data: a.data, start: c, stride: a.cols, n: a.rows}, nil
}

// ColumnsSeq yields (c, column view) for every column in order.
func (a *Array2[T]) ColumnsSeq() iter.Seq2[int, Column[T]] {
	return func(yield func(int, Column[T]) bool) {
		for c := 0; c < a.cols; c++ {
			if !yield(c, Column[T]{data: a.data, start: c, stride: a.cols, n: a.rows}) {
				return
			}
		}
	}
}

// Len returns the number of elements in the column (the grid's row count).
func (col Column[T]) Len() int { return col.n }

// Stride returns the distance in the backing buffer between consecutive
// column elements (the grid's column count).
func (col Column[T]) Stride() int { return col.stride }

// At returns element i of the column, i.e. grid cell (i, c).
func (col Column[T]) At(i int) (T, error) {
	if i < 0 || i >= col.n {
		var zero T
		return zero, fmt.Errorf("Column.At(%d): %w", i, ErrIndexOutOfBounds)
	}

	return col.data[col.start+i*col.stride], nil
}

// Set writes element i of the column through to the grid.
func (col Column[T]) Set(i int, v T) error {
	if i < 0 || i >= col.n {
		return fmt.Errorf("Column.Set(%d): %w", i, ErrIndexOutOfBounds)
	}
	col.data[col.start+i*col.stride] = v

	return nil
}

// All yields (row index, value) pairs top to bottom.
func (col Column[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, off := 0, col.start; i < col.n; i, off = i+1, off+col.stride {
			if !yield(i, col.data[off]) {
				return
			}
		}
	}
}

// Values yields the column's values top to bottom.
func (col Column[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, off := 0, col.start; i < col.n; i, off = i+1, off+col.stride {
			if !yield(col.data[off]) {
				return
			}
		}
	}
}

// Collect materializes the column into a new slice owned by the caller.
func (col Column[T]) Collect() []T {
	out := make([]T, col.n)
	for i, off := 0, col.start; i < col.n; i, off = i+1, off+col.stride {
		out[i] = col.data[off]
	}

	return out
}
