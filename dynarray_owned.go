package libclz

import "errors"

// ReleaseFunc releases a payload whose slot has been dropped from an
// OwnedDynArray.
type ReleaseFunc[T any] func(T)

// OwnedDynArray is the owning variant of [DynArray]: every operation
// that drops a live slot (removal, clear, free) releases the payload
// through the array's release func, exactly once per dropped slot.
//
// Storing the same payload in more than one slot makes removal a
// double release; the caller must guarantee uniqueness. PopLast is the
// one exception to release-on-drop: it transfers ownership of the
// payload back to the caller.
type OwnedDynArray[T comparable] struct {
	arr     *DynArray[T]
	release ReleaseFunc[T]
}

// NewOwnedDynArray constructs an empty owning array. It panics if
// release is nil, since an owning array without a release operation
// cannot honor its contract.
func NewOwnedDynArray[T comparable](release ReleaseFunc[T], opts ...DynArrayOption[T]) (*OwnedDynArray[T], error) {
	if release == nil {
		panic(errors.New("libclz: nil release func for OwnedDynArray"))
	}
	arr, err := NewDynArray[T](opts...)
	if err != nil {
		return nil, err
	}
	return &OwnedDynArray[T]{arr: arr, release: release}, nil
}

func (d *OwnedDynArray[T]) Len() int { return d.arr.Len() }
func (d *OwnedDynArray[T]) Cap() int { return d.arr.Cap() }

// Append stores v; the array takes ownership of the payload.
func (d *OwnedDynArray[T]) Append(v T) error { return d.arr.Append(v) }

// Set overwrites the slot at index i in place. The overwritten payload
// is not released; it is returned to the caller's ownership through the
// second return value.
func (d *OwnedDynArray[T]) Set(i int, v T) (T, bool) {
	old, ok := d.arr.Get(i)
	if !ok {
		var zero T
		return zero, false
	}
	d.arr.Set(i, v)
	return old, true
}

func (d *OwnedDynArray[T]) Get(i int) (T, bool) { return d.arr.Get(i) }

// RemoveFirst removes the first slot equal to v, releasing the payload
// on success.
func (d *OwnedDynArray[T]) RemoveFirst(v T) (bool, error) {
	removed, err := d.arr.RemoveFirst(v)
	if removed {
		d.release(v)
	}
	return removed, err
}

// RemoveAll removes every slot equal to v, releasing the payload once
// per removed slot.
func (d *OwnedDynArray[T]) RemoveAll(v T) (int, error) {
	n, err := d.arr.RemoveAll(v)
	for i := 0; i < n; i++ {
		d.release(v)
	}
	return n, err
}

// RemoveAt removes the slot at index i, releasing its payload on success.
func (d *OwnedDynArray[T]) RemoveAt(i int) (bool, error) {
	v, ok := d.arr.Get(i)
	if !ok {
		return false, nil
	}
	removed, err := d.arr.RemoveAt(i)
	if removed {
		d.release(v)
	}
	return removed, err
}

// PopLast removes and returns the last live slot, transferring payload
// ownership to the caller. The payload is not released.
func (d *OwnedDynArray[T]) PopLast() (T, bool, error) {
	return d.arr.PopLast()
}

// Clear releases every live payload and resets the length to zero,
// retaining capacity.
func (d *OwnedDynArray[T]) Clear() {
	d.arr.ForEach(Consumer[T](d.release))
	d.arr.Clear()
}

func (d *OwnedDynArray[T]) Index(v T) int { return d.arr.Index(v) }

func (d *OwnedDynArray[T]) IndexAfter(v T, after int) int { return d.arr.IndexAfter(v, after) }

func (d *OwnedDynArray[T]) FindFirst(v T) int { return d.arr.FindFirst(v) }

func (d *OwnedDynArray[T]) FindNext(v T) int { return d.arr.FindNext(v) }

func (d *OwnedDynArray[T]) FindReset() { d.arr.FindReset() }

func (d *OwnedDynArray[T]) ForEach(fn Consumer[T]) { d.arr.ForEach(fn) }
func (d *OwnedDynArray[T]) ForEachIf(pred Predicate[T], fn Consumer[T]) {
	d.arr.ForEachIf(pred, fn)
}
func (d *OwnedDynArray[T]) ForEachIfElse(pred Predicate[T], ifFn, elseFn Consumer[T]) {
	d.arr.ForEachIfElse(pred, ifFn, elseFn)
}

// Free releases every live payload and returns the slot storage to the
// allocator. The array must not be used afterwards.
func (d *OwnedDynArray[T]) Free() {
	d.arr.ForEach(Consumer[T](d.release))
	d.arr.Free()
}
