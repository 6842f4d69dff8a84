// SPDX-License-Identifier: MIT

package array2

import "errors"

// Every message is prefixed with "array2: ". Public methods wrap these with
// call-site context (method name and coordinates); match them via errors.Is.
var (
	// ErrInvalidDimensions is returned when a requested shape has a zero or
	// negative extent, at construction and at sub-rectangle extraction.
	ErrInvalidDimensions = errors.New("array2: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// [0,rows) x [0,cols). Indices are never clamped.
	ErrIndexOutOfBounds = errors.New("array2: index out of bounds")

	// ErrNonRectangular indicates that FromRows received rows of differing lengths.
	ErrNonRectangular = errors.New("array2: all rows must have the same length")

	// ErrNilFunc indicates that a nil generator or transform was supplied.
	ErrNilFunc = errors.New("array2: nil function")
)
