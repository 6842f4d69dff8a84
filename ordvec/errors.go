// SPDX-License-Identifier: MIT

package ordvec

import "errors"

// An absent key is NOT an error: lookups and removals report it with a
// false boolean. These sentinels cover the remaining failure cases.
var (
	// ErrDuplicateKey is returned when WithUniqueKeys() is in effect and an
	// operation would store two items with equal keys. Nothing is mutated.
	ErrDuplicateKey = errors.New("ordvec: duplicate key")

	// ErrIndexOutOfBounds indicates a position outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("ordvec: index out of bounds")
)
