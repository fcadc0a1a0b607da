// Package alloc provides the raw memory allocators backing the libclz
// buffer types. Byte buffers draw their storage from an [Allocator];
// slot arrays draw theirs from a [Slots] allocator. The default for both
// is plain Go heap allocation, which never fails. The mmap-backed
// [Arena] keeps buffer storage off the Go heap and introduces a real
// allocation failure path.
package alloc

import (
	"fmt"
	"math/bits"
)

// Allocator manages raw byte regions for buffer backing stores.
//
// Alloc returns a zero-length-safe slice of exactly size bytes. Free
// returns a region previously obtained from Alloc; passing any other
// slice is undefined. Implementations are not required to zero reused
// regions.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte)
}

// Slots is the slot-array counterpart of Allocator, managing backing
// stores for arrays of references.
type Slots[T any] interface {
	Alloc(n int) ([]T, error)
	Free(s []T)
}

// Heap is an Allocator backed by the Go heap. Alloc never fails and
// Free is a no-op; reclamation is left to the garbage collector.
type Heap struct{}

func (Heap) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid allocation size %d", size)
	}
	return make([]byte, size), nil
}

func (Heap) Free(b []byte) {}

// HeapSlots is a Slots allocator backed by the Go heap.
type HeapSlots[T any] struct{}

func (HeapSlots[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid allocation size %d", n)
	}
	return make([]T, n), nil
}

func (HeapSlots[T]) Free(s []T) {}

// NextPow2 returns the smallest power of two that is >= n and >= floor.
// A floor below 1 is treated as 1.
func NextPow2(n, floor int) int {
	if floor < 1 {
		floor = 1
	}
	if n < floor {
		n = floor
	}
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}
