// Package testutils provides instrumented allocators for exercising the
// buffers' allocation and failure paths in tests.
package testutils

import (
	"errors"
	"sync/atomic"
)

// ErrAllocFailed is the failure returned by the failing allocators.
var ErrAllocFailed = errors.New("mock allocation failure")

// CountingAllocator is a heap-backed Allocator that counts calls.
type CountingAllocator struct {
	allocCalls atomic.Int64
	freeCalls  atomic.Int64
}

func (a *CountingAllocator) Alloc(size int) ([]byte, error) {
	a.allocCalls.Add(1)
	return make([]byte, size), nil
}

func (a *CountingAllocator) Free(b []byte) {
	a.freeCalls.Add(1)
}

func (a *CountingAllocator) AllocCalls() int64 {
	return a.allocCalls.Load()
}

func (a *CountingAllocator) FreeCalls() int64 {
	return a.freeCalls.Load()
}

// RegionsInUse returns the number of allocated regions not yet freed.
func (a *CountingAllocator) RegionsInUse() int64 {
	return a.AllocCalls() - a.FreeCalls()
}

func (a *CountingAllocator) Reset() {
	a.allocCalls.Store(0)
	a.freeCalls.Store(0)
}

// FailingAllocator succeeds for FailAfter allocations and fails with
// ErrAllocFailed on every allocation after that.
type FailingAllocator struct {
	FailAfter int
	calls     int
}

func (a *FailingAllocator) Alloc(size int) ([]byte, error) {
	if a.calls >= a.FailAfter {
		return nil, ErrAllocFailed
	}
	a.calls++
	return make([]byte, size), nil
}

func (a *FailingAllocator) Free(b []byte) {}

// FailingSlots is the slot-array counterpart of FailingAllocator.
type FailingSlots[T any] struct {
	FailAfter int
	calls     int
}

func (a *FailingSlots[T]) Alloc(n int) ([]T, error) {
	if a.calls >= a.FailAfter {
		return nil, ErrAllocFailed
	}
	a.calls++
	return make([]T, n), nil
}

func (a *FailingSlots[T]) Free(s []T) {}

// CountingSlots is a heap-backed Slots allocator that counts calls.
type CountingSlots[T any] struct {
	allocCalls atomic.Int64
	freeCalls  atomic.Int64
}

func (a *CountingSlots[T]) Alloc(n int) ([]T, error) {
	a.allocCalls.Add(1)
	return make([]T, n), nil
}

func (a *CountingSlots[T]) Free(s []T) {
	a.freeCalls.Add(1)
}

func (a *CountingSlots[T]) AllocCalls() int64 {
	return a.allocCalls.Load()
}

func (a *CountingSlots[T]) FreeCalls() int64 {
	return a.freeCalls.Load()
}
