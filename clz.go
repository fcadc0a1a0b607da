// Package libclz implements a pair of growable, manually managed buffer
// types sharing one design: a capacity-backed store with doubling
// growth and copy-on-grow mutation.
//
//   - [DynArray] is a generic array of borrowed references. It owns the
//     slot storage, never the referenced payloads; [OwnedDynArray] is
//     the owning variant that releases payloads when slots are dropped.
//   - [StrBuf] is a null-terminated byte buffer whose allocation size is
//     always a power of two. Its String/Bytes views make it
//     interchangeable with a plain string for read-only consumers.
//
// Both types draw their backing stores from the allocators in
// internal/alloc (Go heap by default, an mmap arena optionally) and
// follow one failure rule: every fallible operation either fully
// succeeds or leaves the buffer exactly as it was, reporting the
// failure to the caller. Neither type is safe for concurrent use, and
// instances must not be copied; use Clone to obtain independent storage.
package libclz

import "github.com/ess3sq/libclz/internal/alloc"

// NotFound is the sentinel returned by search operations when the
// needle is absent. It is out-of-band: 0 is a valid match position.
const NotFound = -1

// Predicate reports whether a stored value satisfies a condition.
// Used by the filtered traversal operations.
type Predicate[T any] func(T) bool

// Consumer processes a stored value during traversal.
type Consumer[T any] func(T)

// Option configures a StrBuf at construction time.
type Option func(*options)

type options struct {
	allocator alloc.Allocator
}

func defaultOptions() options {
	return options{allocator: alloc.Heap{}}
}

// WithAllocator selects the allocator backing the buffer's storage.
// The default is the Go heap, whose allocations never fail.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// DynArrayOption configures a DynArray at construction time.
type DynArrayOption[T comparable] func(*dynArrayOptions[T])

type dynArrayOptions[T comparable] struct {
	slots alloc.Slots[T]
}

func defaultDynArrayOptions[T comparable]() dynArrayOptions[T] {
	return dynArrayOptions[T]{slots: alloc.HeapSlots[T]{}}
}

// WithSlots selects the allocator backing the array's slot storage.
func WithSlots[T comparable](a alloc.Slots[T]) DynArrayOption[T] {
	return func(o *dynArrayOptions[T]) {
		o.slots = a
	}
}
