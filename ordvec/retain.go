// SPDX-License-Identifier: MIT

package ordvec

import (
	"fmt"
	"slices"
)

// RetainMap calls f on every item in key order. When f returns (item', true)
// the item is replaced by item'; when it returns false the item is dropped.
// Items whose key changed are moved to their new position by one stable sort,
// so survivors with equal keys keep their relative order.
//
// The work happens on a copy that replaces the OrdVec only on success.
//
// Errors:
//   - ErrDuplicateKey under WithUniqueKeys() when two survivors share a key;
//     the OrdVec is left unchanged.
//
// Complexity: O(n) calls of f + O(n log n) sort.
func (v *OrdVec[T, K]) RetainMap(f func(item T) (T, bool)) error {
	out := make([]T, 0, len(v.items))
	sorted := true
	for _, item := range v.items {
		nv, keep := f(item)
		if !keep {
			continue
		}
		if n := len(out); n > 0 && v.keyOf(out[n-1]) > v.keyOf(nv) {
			sorted = false
		}
		out = append(out, nv)
	}
	if !sorted {
		slices.SortStableFunc(out, v.compare)
	}
	if v.unique {
		if i, dup := v.firstDuplicate(out); dup {
			return fmt.Errorf("ordvec.RetainMap: key %v: %w", v.keyOf(out[i]), ErrDuplicateKey)
		}
	}
	v.items = out

	return nil
}

// Retain keeps only the items for which keep returns true.
// Order is preserved, so no re-sort is needed.
func (v *OrdVec[T, K]) Retain(keep func(item T) bool) {
	v.items = slices.DeleteFunc(v.items, func(item T) bool { return !keep(item) })
}
