// SPDX-License-Identifier: MIT

// Package array2 provides Array2, a fixed-size two-dimensional array stored
// as one contiguous row-major buffer.
//
// What:
//
//   - Array2[T] owns exactly rows*cols elements; (r, c) lives at data[r*cols+c].
//   - Dimensions are fixed at construction; elements are mutated in place.
//   - Rows are exposed as borrowed slices, columns as strided views.
//   - View gives a no-copy window; Subarray materializes an independent copy.
//   - Map / MapIndexed build a new grid of the same shape from a transform.
//
// Why:
//
//   - Replaces [][]T: one allocation, no ragged rows, cache-friendly scans.
//
// Complexity:
//
//   - New, NewFunc, FromRows, Clone, Map:  O(rows*cols) time and memory.
//   - At, Set, Ptr, Row, Column, View:     O(1).
//   - Subarray:                            O(rowLen*colLen).
//
// Errors:
//
//   - ErrInvalidDimensions: zero/negative dimensions, empty input, zero-length sub-rectangle.
//   - ErrIndexOutOfBounds:  row or column index outside the declared bounds.
//   - ErrNonRectangular:    FromRows input rows of differing lengths.
//   - ErrNilFunc:           nil generator or transform.
//
// Ownership:
//
//   - Row, Column, View and Elements alias the grid's buffer. They stay valid
//     for the lifetime of the grid (the buffer never relocates) and observe
//     every write made through the grid.
//   - Array2 is not safe for concurrent mutation; guard it externally.
package array2
