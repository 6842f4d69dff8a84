// SPDX-License-Identifier: MIT

// Package ordvec: functional configuration for OrdVec construction.
//   - Option / options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).

package ordvec

// Defaults, single source of truth for zero-value behavior.
const (
	// DefaultCapacity is the initial backing capacity of New.
	DefaultCapacity = 0

	// DefaultUniqueKeys allows duplicate keys (see the package tie-break policy).
	DefaultUniqueKeys = false
)

const (
	panicCapacityNegative = "ordvec: WithCapacity: capacity must be non-negative"
	panicNilKeyFunc       = "ordvec: key function must not be nil"
)

// Option mutates internal options. Applying the same Option twice is harmless.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	capacity int  // >= 0; DefaultCapacity
	unique   bool // DefaultUniqueKeys
}

// WithCapacity pre-sizes the backing slice to hold n items without growing.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *options) { o.capacity = n }
}

// WithUniqueKeys rejects duplicate keys: Insert, FromUnsorted and RetainMap
// return ErrDuplicateKey instead of storing a second item with an equal key.
func WithUniqueKeys() Option {
	return func(o *options) { o.unique = true }
}

// gatherOptions applies opts over the defaults. nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		capacity: DefaultCapacity,
		unique:   DefaultUniqueKeys,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
