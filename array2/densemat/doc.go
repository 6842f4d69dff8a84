// SPDX-License-Identifier: MIT

// Package densemat bridges array2.Array2[float64] and gonum's mat.Dense.
//
// Both types keep a row-major float64 buffer, and a grid's stride always
// equals its column count, so ToDense wraps the grid's storage without a copy.
// Writes through either value are visible in the other. FromDense copies.
//
// Errors:
//
//   - array2.ErrInvalidDimensions: a zero-sized gonum matrix.
//   - ErrDimensionMismatch:        incompatible operand shapes in Mul.
package densemat
