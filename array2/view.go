// SPDX-License-Identifier: MIT

package array2

import "fmt"

// View is a non-owning rectangular window into an Array2 (shared storage).
// Writes through a View are visible in the base grid and vice versa.
// Use Extract or Array2.Subarray when an independent lifetime is needed.
type View[T any] struct {
	base *Array2[T] // storage owner
	r0   int        // top row in base
	c0   int        // left column in base
	r    int        // view height
	c    int        // view width
}

// checkRect validates a sub-rectangle request against the grid bounds.
// Zero or negative lengths are a shape error; a rectangle that does not fit
// inside [0,rows) x [0,cols) is a bounds error.
func (a *Array2[T]) checkRect(rowStart, rowLen, colStart, colLen int) error {
	if rowLen <= 0 || colLen <= 0 {
		return ErrInvalidDimensions
	}
	if rowStart < 0 || colStart < 0 {
		return ErrIndexOutOfBounds
	}
	// Compare against the remaining extent so rowStart+rowLen cannot overflow.
	if rowStart >= a.rows || rowLen > a.rows-rowStart {
		return ErrIndexOutOfBounds
	}
	if colStart >= a.cols || colLen > a.cols-colStart {
		return ErrIndexOutOfBounds
	}

	return nil
}

// View creates a no-copy window of rowLen×colLen cells whose top-left corner
// is (rowStart, colStart).
//
// Errors:
//   - ErrInvalidDimensions when rowLen or colLen is not positive.
//   - ErrIndexOutOfBounds when the window is not fully inside the grid.
//
// Complexity: O(1).
func (a *Array2[T]) View(rowStart, rowLen, colStart, colLen int) (*View[T], error) {
	if err := a.checkRect(rowStart, rowLen, colStart, colLen); err != nil {
		return nil, fmt.Errorf("Array2.%s(%d,%d,%d,%d): %w", ctxView, rowStart, rowLen, colStart, colLen, err)
	}

	return &View[T]{base: a, r0: rowStart, c0: colStart, r: rowLen, c: colLen}, nil
}

// Subarray copies the rowLen×colLen rectangle at (rowStart, colStart) into a
// new, independently owned Array2 in row-major order. The source grid is not
// modified and the result does not alias it.
//
// Errors:
//   - ErrInvalidDimensions when rowLen or colLen is not positive.
//   - ErrIndexOutOfBounds when the rectangle is not fully inside the grid.
//
// Complexity: O(rowLen*colLen) time and memory.
func (a *Array2[T]) Subarray(rowStart, rowLen, colStart, colLen int) (*Array2[T], error) {
	if err := a.checkRect(rowStart, rowLen, colStart, colLen); err != nil {
		return nil, fmt.Errorf("Array2.%s(%d,%d,%d,%d): %w", ctxSubarray, rowStart, rowLen, colStart, colLen, err)
	}

	return a.copyRect(rowStart, rowLen, colStart, colLen), nil
}

// copyRect assumes the rectangle was validated. One copy() per source row.
func (a *Array2[T]) copyRect(rowStart, rowLen, colStart, colLen int) *Array2[T] {
	data := make([]T, rowLen*colLen)
	var i, src int
	for i = 0; i < rowLen; i++ {
		src = (rowStart+i)*a.cols + colStart
		copy(data[i*colLen:(i+1)*colLen], a.data[src:src+colLen])
	}

	return &Array2[T]{rows: rowLen, cols: colLen, data: data}
}

// Rows returns the view height.
func (v *View[T]) Rows() int { return v.r }

// Cols returns the view width.
func (v *View[T]) Cols() int { return v.c }

// Origin returns the base-grid coordinate of the view's top-left cell.
func (v *View[T]) Origin() Coord { return Coord{Row: v.r0, Col: v.c0} }

// At reads element (i,j) of the view, translating to base coordinates.
func (v *View[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		var zero T
		return zero, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return v.base.data[(v.r0+i)*v.base.cols+(v.c0+j)], nil
}

// Set writes element (i,j) of the view through to the base grid.
func (v *View[T]) Set(i, j int, val T) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	v.base.data[(v.r0+i)*v.base.cols+(v.c0+j)] = val

	return nil
}

// Row returns row i of the view as a borrowed slice of length Cols(), capped
// so append cannot spill into neighbouring cells.
func (v *View[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= v.r {
		return nil, fmt.Errorf("View.Row(%d): %w", i, ErrIndexOutOfBounds)
	}
	start := (v.r0+i)*v.base.cols + v.c0
	end := start + v.c

	return v.base.data[start:end:end], nil
}

// Extract copies the window into a new independent Array2.
func (v *View[T]) Extract() *Array2[T] {
	return v.base.copyRect(v.r0, v.r, v.c0, v.c)
}
