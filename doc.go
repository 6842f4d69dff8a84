// Package flatcoll is a small set of collections backed by flat, contiguous
// slices, meant to replace ad-hoc [][]T grids and hand-maintained sorted slices.
//
// 🚀 What is inside?
//
//	Two independent, leaf-level packages:
//		• array2: Array2[T], a fixed-size 2D array in one row-major buffer,
//		  with row slices, strided column views, windows, copies and Map.
//		• ordvec: OrdVec[T, K], a slice kept sorted by a caller-supplied key,
//		  with binary-search lookup, ordered insertion and removal.
//	Plus array2/densemat, a zero-copy bridge from Array2[float64] to gonum.
//
// ✨ Why?
//
//   - One allocation per collection, cache-friendly scans.
//   - No separate hash or tree index: the order IS the index.
//   - Errors, not panics, at the public surface; absence is a bool.
//
// Neither type is safe for concurrent mutation; wrap it in a sync.Mutex when
// shared between goroutines.
//
// Quick ASCII example (Array2 3×4, row-major):
//
//	 0  1  2  3      data = [0 1 2 3 4 5 6 7 8 9 10 11]
//	 4  5  6  7      (r,c) → data[r*4 + c]
//	 8  9 10 11
//
//	go get github.com/katalvlaran/flatcoll
package flatcoll
