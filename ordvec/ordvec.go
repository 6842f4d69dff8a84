// SPDX-License-Identifier: MIT

// Package ordvec - construction, insertion, removal and iteration.
//
// Purpose:
//   - Keep the sortedness invariant after every call; no call leaves the
//     slice half-updated (validation happens before any write).
//   - Report absence with a boolean, never with an error.

package ordvec

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// New creates an empty OrdVec ordered by keyOf.
// Panics if keyOf is nil (programmer error).
//
// Example:
//
//	byID := ordvec.New(func(u User) int { return u.ID })
func New[T any, K constraints.Ordered](keyOf func(T) K, opts ...Option) *OrdVec[T, K] {
	if keyOf == nil {
		panic(panicNilKeyFunc)
	}
	o := gatherOptions(opts...)

	return &OrdVec[T, K]{
		items:  make([]T, 0, o.capacity),
		keyOf:  keyOf,
		unique: o.unique,
	}
}

// FromUnsorted copies items and sorts the copy once, stably, by keyOf.
// Among equal keys the input order is kept. The caller's slice is not modified.
//
// Errors:
//   - ErrDuplicateKey under WithUniqueKeys() when two items share a key.
//
// Complexity: O(n log n).
func FromUnsorted[T any, K constraints.Ordered](items []T, keyOf func(T) K, opts ...Option) (*OrdVec[T, K], error) {
	v := New(keyOf, opts...)
	if cap(v.items) < len(items) {
		v.items = make([]T, 0, len(items))
	}
	v.items = append(v.items, items...)
	slices.SortStableFunc(v.items, v.compare)

	if v.unique {
		if i, dup := v.firstDuplicate(v.items); dup {
			return nil, fmt.Errorf("ordvec.FromUnsorted: key %v at positions %d and %d: %w", v.keyOf(v.items[i]), i, i+1, ErrDuplicateKey)
		}
	}

	return v, nil
}

// NewPairs creates an empty OrdVec of Pair values keyed by Pair.Key.
func NewPairs[K constraints.Ordered, V any](opts ...Option) *OrdVec[Pair[K, V], K] {
	return New(PairKey[K, V], opts...)
}

// PairsFromUnsorted is FromUnsorted for Pair values keyed by Pair.Key.
func PairsFromUnsorted[K constraints.Ordered, V any](pairs []Pair[K, V], opts ...Option) (*OrdVec[Pair[K, V], K], error) {
	return FromUnsorted(pairs, PairKey[K, V], opts...)
}

// compare orders two items by key for the stable sorts.
func (v *OrdVec[T, K]) compare(a, b T) int {
	ka, kb := v.keyOf(a), v.keyOf(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// firstDuplicate returns the first i with key(items[i]) == key(items[i+1]).
// items must already be sorted.
func (v *OrdVec[T, K]) firstDuplicate(items []T) (int, bool) {
	for i := 1; i < len(items); i++ {
		if v.keyOf(items[i-1]) == v.keyOf(items[i]) {
			return i - 1, true
		}
	}

	return 0, false
}

// Len returns the number of items.
func (v *OrdVec[T, K]) Len() int { return len(v.items) }

// IsEmpty reports whether the OrdVec holds no items.
func (v *OrdVec[T, K]) IsEmpty() bool { return len(v.items) == 0 }

// Unique reports whether duplicate keys are rejected.
func (v *OrdVec[T, K]) Unique() bool { return v.unique }

// Insert adds item at the lower bound of its key, i.e. immediately before any
// existing items with an equal key.
//
// Implementation:
//   - Stage 1: fast path, append when the key is greater than the last key.
//   - Stage 2: binary search for the lower bound.
//   - Stage 3: under WithUniqueKeys(), reject an equal key without writing.
//   - Stage 4: shift the tail right by one and store item.
//
// Errors:
//   - ErrDuplicateKey under WithUniqueKeys() when the key is already present.
//
// Complexity: O(log n + n) worst case, O(1) amortized for the append path.
func (v *OrdVec[T, K]) Insert(item T) error {
	k := v.keyOf(item)
	n := len(v.items)
	if n == 0 || v.keyOf(v.items[n-1]) < k {
		v.items = append(v.items, item)
		return nil
	}

	i := v.lowerBound(k)
	if v.unique && i < n && v.keyOf(v.items[i]) == k {
		return fmt.Errorf("ordvec.Insert: key %v: %w", k, ErrDuplicateKey)
	}
	v.items = slices.Insert(v.items, i, item)

	return nil
}

// RemoveByKey removes and returns the first item (in sort order) whose key
// equals k. Returns false and leaves the OrdVec unchanged when k is absent.
func (v *OrdVec[T, K]) RemoveByKey(k K) (T, bool) {
	return v.RemoveNth(k, 0)
}

// RemoveNth removes and returns the n-th item (0-based) of the run of items
// whose key equals k. Returns false and leaves the OrdVec unchanged when k
// is absent or n is outside the run.
func (v *OrdVec[T, K]) RemoveNth(k K, n int) (T, bool) {
	lo, hi := v.FindRange(k)
	if n < 0 || n >= hi-lo {
		var zero T
		return zero, false
	}
	i := lo + n
	item := v.items[i]
	// slices.Delete shifts left and zeroes the vacated tail slot.
	v.items = slices.Delete(v.items, i, i+1)

	return item, true
}

// RemoveAll removes every item whose key equals k and returns how many were removed.
func (v *OrdVec[T, K]) RemoveAll(k K) int {
	lo, hi := v.FindRange(k)
	if lo == hi {
		return 0
	}
	v.items = slices.Delete(v.items, lo, hi)

	return hi - lo
}

// RemoveAt removes and returns the item at position i.
func (v *OrdVec[T, K]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, fmt.Errorf("OrdVec.RemoveAt(%d): %w", i, ErrIndexOutOfBounds)
	}
	item := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)

	return item, nil
}

// Clear removes all items, keeping the allocated capacity.
func (v *OrdVec[T, K]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

// At returns the item at position i in key order.
func (v *OrdVec[T, K]) At(i int) (T, error) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, fmt.Errorf("OrdVec.At(%d): %w", i, ErrIndexOutOfBounds)
	}

	return v.items[i], nil
}

// Min returns the item with the smallest key (the first item).
func (v *OrdVec[T, K]) Min() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}

	return v.items[0], true
}

// Max returns the item with the largest key (the last item).
func (v *OrdVec[T, K]) Max() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}

	return v.items[len(v.items)-1], true
}

// Items returns the ordered backing slice as a read-only view.
// It is invalidated by any insertion or removal; capacity is capped so
// append on the result never writes into the OrdVec.
func (v *OrdVec[T, K]) Items() []T {
	return v.items[:len(v.items):len(v.items)]
}

// All yields (position, item) in ascending key order.
// The sequence is restartable; mutating the OrdVec while ranging is forbidden.
func (v *OrdVec[T, K]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values yields items in ascending key order.
func (v *OrdVec[T, K]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward yields (position, item) in descending key order.
func (v *OrdVec[T, K]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(v.items) - 1; i >= 0; i-- {
			if !yield(i, v.items[i]) {
				return
			}
		}
	}
}

// Keys yields the key of every item in ascending order (duplicates repeated).
func (v *OrdVec[T, K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, item := range v.items {
			if !yield(v.keyOf(item)) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same key function and policy.
// Items are copied by assignment.
func (v *OrdVec[T, K]) Clone() *OrdVec[T, K] {
	return &OrdVec[T, K]{
		items:  slices.Clone(v.items),
		keyOf:  v.keyOf,
		unique: v.unique,
	}
}

// String renders the items in order, e.g. "OrdVec[1 3 5]".
func (v *OrdVec[T, K]) String() string {
	var b strings.Builder
	b.WriteString("OrdVec[")
	for i, item := range v.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteByte(']')

	return b.String()
}

// Equal reports whether a and b hold equal items in the same order.
// Key functions are not compared.
func Equal[T comparable, K constraints.Ordered](a, b *OrdVec[T, K]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return slices.Equal(a.items, b.items)
}
