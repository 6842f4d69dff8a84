// SPDX-License-Identifier: MIT

package densemat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/flatcoll/array2"
)

// ErrDimensionMismatch indicates operands whose shapes cannot be combined,
// e.g. Mul where a.Cols() != b.Rows().
var ErrDimensionMismatch = errors.New("densemat: dimension mismatch")

// ToDense returns a *mat.Dense backed by a's storage.
// The result aliases a: a.Set is visible through the matrix and
// Dense.Set is visible through a. Complexity: O(1).
func ToDense(a *array2.Array2[float64]) *mat.Dense {
	r, c := a.Shape()

	return mat.NewDense(r, c, a.Elements())
}

// FromDense copies any gonum matrix into a new Array2.
// Errors: array2.ErrInvalidDimensions for a matrix with no rows or columns.
// Complexity: O(r*c).
func FromDense(m mat.Matrix) (*array2.Array2[float64], error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("densemat.FromDense(%d,%d): %w", r, c, array2.ErrInvalidDimensions)
	}

	return array2.NewFunc(r, c, m.At)
}

// Mul returns the matrix product a·b as a new grid, computed by gonum.
// Errors: ErrDimensionMismatch when a.Cols() != b.Rows().
func Mul(a, b *array2.Array2[float64]) (*array2.Array2[float64], error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("densemat.Mul(%dx%d, %dx%d): %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	out, err := array2.New(a.Rows(), b.Cols(), 0.0)
	if err != nil {
		return nil, err
	}
	// Writing into a view of out's buffer fills the grid directly.
	ToDense(out).Mul(ToDense(a), ToDense(b))

	return out, nil
}
