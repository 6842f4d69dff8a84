// SPDX-License-Identifier: MIT

package ordvec

import "golang.org/x/exp/constraints"

// KeyFunc extracts the ordering key from an item. It must be pure.
type KeyFunc[T any, K constraints.Ordered] func(item T) K

// OrdVec is a slice of T kept ascending by keyOf.
// Invariant: keyOf(items[i]) <= keyOf(items[i+1]) for every adjacent pair,
// strictly < when unique is set.
type OrdVec[T any, K constraints.Ordered] struct {
	items  []T           // ordered storage
	keyOf  KeyFunc[T, K] // caller-supplied, assumed pure
	unique bool          // reject equal keys
}

// Pair couples a key with a value for OrdVecs whose items do not carry
// their own key.
type Pair[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// PairKey is the KeyFunc for Pair: it returns p.Key.
func PairKey[K constraints.Ordered, V any](p Pair[K, V]) K {
	return p.Key
}
