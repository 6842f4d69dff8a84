// SPDX-License-Identifier: MIT

package ordvec

import "sort"

// lowerBound returns the first position whose key is >= k (Len() if none).
func (v *OrdVec[T, K]) lowerBound(k K) int {
	return sort.Search(len(v.items), func(i int) bool { return v.keyOf(v.items[i]) >= k })
}

// upperBound returns the first position whose key is > k (Len() if none).
func (v *OrdVec[T, K]) upperBound(k K) int {
	return sort.Search(len(v.items), func(i int) bool { return v.keyOf(v.items[i]) > k })
}

// Index returns the position of the first item whose key equals k.
// Complexity: O(log n).
func (v *OrdVec[T, K]) Index(k K) (int, bool) {
	i := v.lowerBound(k)
	if i >= len(v.items) || v.keyOf(v.items[i]) != k {
		return 0, false
	}

	return i, true
}

// Find returns the first item in sort order whose key equals k.
// Absence is a normal outcome, reported as (zero, false).
// Repeated calls without intervening mutation return the same item.
func (v *OrdVec[T, K]) Find(k K) (T, bool) {
	i, ok := v.Index(k)
	if !ok {
		var zero T
		return zero, false
	}

	return v.items[i], true
}

// Ptr returns a pointer to the first item whose key equals k.
// Changing the item's key through the pointer breaks the ordering invariant
// and is a precondition violation. The pointer is invalidated by any
// insertion or removal.
func (v *OrdVec[T, K]) Ptr(k K) (*T, bool) {
	i, ok := v.Index(k)
	if !ok {
		return nil, false
	}

	return &v.items[i], true
}

// Contains reports whether any item has key k.
func (v *OrdVec[T, K]) Contains(k K) bool {
	_, ok := v.Index(k)
	return ok
}

// FindRange returns the half-open span [lo, hi) of items whose key equals k.
// lo == hi when k is absent; lo is then the position where k would be inserted.
func (v *OrdVec[T, K]) FindRange(k K) (lo, hi int) {
	lo = v.lowerBound(k)
	if lo == len(v.items) || v.keyOf(v.items[lo]) != k {
		return lo, lo
	}

	return lo, v.upperBound(k)
}

// Ties returns the items whose key equals k as a borrowed, capacity-capped
// slice in sort order (empty when absent).
func (v *OrdVec[T, K]) Ties(k K) []T {
	lo, hi := v.FindRange(k)
	return v.items[lo:hi:hi]
}

// CountKey returns how many items have key k.
func (v *OrdVec[T, K]) CountKey(k K) int {
	lo, hi := v.FindRange(k)
	return hi - lo
}
