// SPDX-License-Identifier: MIT

// Package array2 - Array2 storage (row-major), constructors & safe accessors.
//
// Purpose:
//   - Provide a single contiguous buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: At/Set/Ptr return errors instead of panicking.
//   - Keep iteration deterministic (fixed r→c order).
//
// Complexity quicksheet:
//   - New/NewFunc/FromRows: O(r*c); At/Set/Ptr/Row: O(1); Clone: O(r*c).

package array2

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// arrayErrorf wraps an error with a uniform Array2 context and callsite indices.
// The sentinel is preserved via %w so callers keep using errors.Is.
func arrayErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Array2.%s(%d,%d): %w", method, row, col, err)
}

// validateShape rejects non-positive extents and products that overflow int.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// New creates a rows×cols Array2 with every element set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one buffer of rows*cols and fill it.
//
// Behavior highlights:
//   - Zero-area grids are rejected rather than silently allowed.
//   - fill is copied by assignment; for pointer or slice types every cell
//     shares the same referent (use NewFunc for distinct values).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func New[T any](rows, cols int, fill T) (*Array2[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("array2.New(%d,%d): %w", rows, cols, err)
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}

	return &Array2[T]{rows: rows, cols: cols, data: data}, nil
}

// NewFunc creates a rows×cols Array2 whose element (r,c) is gen(r,c).
// gen is called exactly once per cell in row-major order.
//
// Errors:
//   - ErrInvalidDimensions for a non-positive shape.
//   - ErrNilFunc when gen is nil.
//
// Complexity:
//   - Time O(rows*cols) calls of gen, Space O(rows*cols).
func NewFunc[T any](rows, cols int, gen func(r, c int) T) (*Array2[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("array2.NewFunc(%d,%d): %w", rows, cols, err)
	}
	if gen == nil {
		return nil, fmt.Errorf("array2.NewFunc: %w", ErrNilFunc)
	}
	data := make([]T, rows*cols)
	var r, c, base int
	for r = 0; r < rows; r++ {
		base = r * cols
		for c = 0; c < cols; c++ {
			data[base+c] = gen(r, c)
		}
	}

	return &Array2[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows builds an Array2 from a rectangular [][]T. The input is deep-copied,
// so later mutation of rows does not affect the grid.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty or its first row is empty.
//   - ErrNonRectangular if any row length differs from the first.
func FromRows[T any](rows [][]T) (*Array2[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("array2.FromRows: %w", ErrInvalidDimensions)
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("array2.FromRows: row %d has length %d, want %d: %w", i, len(row), w, ErrNonRectangular)
		}
	}
	data := make([]T, 0, h*w)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Array2[T]{rows: h, cols: w, data: data}, nil
}

// Rows returns the row count. Complexity: O(1).
func (a *Array2[T]) Rows() int { return a.rows }

// Cols returns the column count. Complexity: O(1).
func (a *Array2[T]) Cols() int { return a.cols }

// Shape packs Rows() and Cols() into a single call.
func (a *Array2[T]) Shape() (rows, cols int) { return a.rows, a.cols }

// Len returns the number of elements, rows*cols.
func (a *Array2[T]) Len() int { return len(a.data) }

// Elements returns the backing buffer in row-major order. The slice aliases
// the grid: writes through it are writes to the grid. Its capacity is capped
// so append always reallocates instead of growing the grid.
func (a *Array2[T]) Elements() []T {
	return a.data[:len(a.data):len(a.data)]
}

// InBounds reports whether (r,c) lies within the grid.
func (a *Array2[T]) InBounds(r, c int) bool {
	return r >= 0 && r < a.rows && c >= 0 && c < a.cols
}

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// Returns the bare sentinel; public methods wrap it with their own context.
func (a *Array2[T]) indexOf(r, c int) (int, error) {
	if r < 0 || r >= a.rows {
		return 0, ErrIndexOutOfBounds
	}
	if c < 0 || c >= a.cols {
		return 0, ErrIndexOutOfBounds
	}

	return r*a.cols + c, nil
}

// At returns the element at (r,c).
// Errors: ErrIndexOutOfBounds when r∉[0,rows) or c∉[0,cols).
// Complexity: O(1).
func (a *Array2[T]) At(r, c int) (T, error) {
	off, err := a.indexOf(r, c)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, r, c, err)
	}

	return a.data[off], nil
}

// Ptr returns a pointer to the element at (r,c) for in-place mutation.
// The pointer stays valid for the lifetime of the grid.
func (a *Array2[T]) Ptr(r, c int) (*T, error) {
	off, err := a.indexOf(r, c)
	if err != nil {
		return nil, arrayErrorf(ctxPtr, r, c, err)
	}

	return &a.data[off], nil
}

// Set stores v at (r,c). On error nothing is written.
func (a *Array2[T]) Set(r, c int, v T) error {
	off, err := a.indexOf(r, c)
	if err != nil {
		return arrayErrorf(ctxSet, r, c, err)
	}
	a.data[off] = v

	return nil
}

// Row returns row r as a borrowed slice of length Cols().
// Capacity equals length, so appending to the result never writes into row r+1.
func (a *Array2[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= a.rows {
		return nil, arrayErrorf(ctxRow, r, 0, ErrIndexOutOfBounds)
	}
	start := r * a.cols
	end := start + a.cols

	return a.data[start:end:end], nil
}

// RowsSeq yields (r, row) for every row in order. Each row is a borrowed
// slice as returned by Row.
func (a *Array2[T]) RowsSeq() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < a.rows; r++ {
			start := r * a.cols
			end := start + a.cols
			if !yield(r, a.data[start:end:end]) {
				return
			}
		}
	}
}

// All yields every (coordinate, value) pair in row-major order.
func (a *Array2[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		var r, c, base int
		for r = 0; r < a.rows; r++ {
			base = r * a.cols
			for c = 0; c < a.cols; c++ {
				if !yield(Coord{Row: r, Col: c}, a.data[base+c]) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(rows*cols).
func (a *Array2[T]) Clone() *Array2[T] {
	cp := make([]T, len(a.data))
	copy(cp, a.data)

	return &Array2[T]{rows: a.rows, cols: a.cols, data: cp}
}

// Fill sets every element to v.
func (a *Array2[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Do visits each element (r,c) in row-major order and calls f(r,c,v).
// Stops early when f returns false. Read-only with respect to the grid.
func (a *Array2[T]) Do(f func(r, c int, v T) bool) {
	var r, c, base int
	for r = 0; r < a.rows; r++ {
		base = r * a.cols
		for c = 0; c < a.cols; c++ {
			if !f(r, c, a.data[base+c]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(r,c,v) in place, in row-major order.
// Cells are written one at a time, so an f that reads the grid through a
// closure observes already-updated values for earlier cells.
func (a *Array2[T]) Apply(f func(r, c int, v T) T) {
	var r, c, base int
	for r = 0; r < a.rows; r++ {
		base = r * a.cols
		for c = 0; c < a.cols; c++ {
			a.data[base+c] = f(r, c, a.data[base+c])
		}
	}
}

// String renders one bracketed row per line using fmt's %v verb.
func (a *Array2[T]) String() string {
	var b strings.Builder
	var r, c, base int
	for r = 0; r < a.rows; r++ {
		b.WriteString(_fmtRowOpen)
		base = r * a.cols
		for c = 0; c < a.cols; c++ {
			fmt.Fprintf(&b, "%v", a.data[base+c])
			if c+1 < a.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Equal reports whether a and b have the same shape and elements.
// Two nil grids are equal; a nil and a non-nil grid are not.
func Equal[T comparable](a, b *Array2[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
