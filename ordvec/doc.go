// SPDX-License-Identifier: MIT

// Package ordvec provides OrdVec, a contiguous slice kept sorted by a key
// extracted from each element, for lookup-heavy, insert-light workloads.
//
// What:
//
//   - OrdVec[T, K] stores items in one growable slice ordered ascending by keyOf(item).
//   - Find / Index / FindRange locate items by binary search; no separate index exists.
//   - Insert places an item at the lower bound of its key; RemoveByKey shifts left.
//   - Pair[K, V] with PairKey covers the common "key stored beside the value" case.
//
// Tie-break policy (duplicate keys):
//
//   - Duplicate keys are allowed unless WithUniqueKeys() is given.
//   - Insert puts a new item BEFORE existing items with an equal key.
//   - Find returns the FIRST item in sort order with an equal key, which is
//     therefore the most recently inserted duplicate.
//   - FromUnsorted sorts stably, keeping the input order among equal keys.
//
// Complexity:
//
//   - Find, Index, FindRange, Contains:  O(log n).
//   - Insert, RemoveByKey:               O(log n) search + O(n) shift; growth is
//     amortized doubling. Appending a key larger than every other key is O(1) amortized.
//   - FromUnsorted, RetainMap:           O(n log n).
//
// Preconditions (not checked at runtime):
//
//   - keyOf must be pure: the same item always yields the same key.
//   - Items must not be mutated in a way that changes their key while stored
//     (through Ptr or Items). Use RetainMap to re-key items.
//   - Float keys must not be NaN.
//   - Views (Items, Ties) and iterators are invalidated by any insertion or
//     removal; mutating the OrdVec while ranging over it is forbidden.
//   - OrdVec is not safe for concurrent use; guard it externally.
package ordvec
