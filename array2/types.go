// SPDX-License-Identifier: MIT

package array2

import "fmt"

// Coord is a (row, column) position inside an Array2.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(r,c)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Array2 is a fixed-size two-dimensional array in row-major order.
//   - rows, cols hold the immutable dimensions (both > 0).
//   - data is the flat backing buffer, len(data) == rows*cols.
type Array2[T any] struct {
	rows, cols int // fixed at construction
	data       []T // row-major storage, offset = r*cols + c
}

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxPtr      = "Ptr"
	ctxRow      = "Row"
	ctxColumn   = "Column"
	ctxView     = "View"
	ctxSubarray = "Subarray"
	ctxMap      = "Map"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)
