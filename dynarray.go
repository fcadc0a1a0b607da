package libclz

import (
	"fmt"

	"github.com/ess3sq/libclz/internal/alloc"
)

// DefaultDynArrayCap is the slot capacity of a freshly constructed DynArray.
// Capacity only ever doubles from here; it never shrinks.
const DefaultDynArrayCap = 8

// findCursorUnset is the resume cursor's sentinel "no session" value.
const findCursorUnset = -1

// DynArray is a growable array of borrowed references. The array owns
// its slot storage exclusively but never the referenced payloads;
// callers that need payload release on removal should use
// [OwnedDynArray] instead.
//
// The zero value is not usable; construct with [NewDynArray]. Instances
// must not be copied.
type DynArray[T comparable] struct {
	slots  []T
	length int
	cursor int
	alloc  alloc.Slots[T]
}

// NewDynArray constructs an empty array with capacity DefaultDynArrayCap.
func NewDynArray[T comparable](opts ...DynArrayOption[T]) (*DynArray[T], error) {
	o := defaultDynArrayOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	slots, err := o.slots.Alloc(DefaultDynArrayCap)
	if err != nil {
		return nil, fmt.Errorf("libclz: allocate slot array: %w", err)
	}
	return &DynArray[T]{
		slots:  slots,
		cursor: findCursorUnset,
		alloc:  o.slots,
	}, nil
}

// Len returns the number of live slots.
func (d *DynArray[T]) Len() int { return d.length }

// Cap returns the number of allocated slots.
func (d *DynArray[T]) Cap() int { return len(d.slots) }

// Append stores v after the last live slot, doubling capacity first if
// the array is full. On allocation failure the array is unchanged.
func (d *DynArray[T]) Append(v T) error {
	if d.length == len(d.slots) {
		grown, err := d.alloc.Alloc(len(d.slots) * 2)
		if err != nil {
			return fmt.Errorf("libclz: grow slot array: %w", err)
		}
		copy(grown, d.slots)
		d.alloc.Free(d.slots)
		d.slots = grown
	}
	d.slots[d.length] = v
	d.length++
	return nil
}

// Set overwrites the slot at index i in place. It reports false without
// modifying the array when i is out of range; in particular
// Set(d.Len(), v) is rejected rather than treated as an append.
func (d *DynArray[T]) Set(i int, v T) bool {
	if i < 0 || i >= d.length {
		return false
	}
	d.slots[i] = v
	return true
}

// Get returns the value stored at index i. The second return value is
// false when i is out of range, distinguishing absence from a
// legitimately stored zero value.
func (d *DynArray[T]) Get(i int) (T, bool) {
	if i < 0 || i >= d.length {
		var zero T
		return zero, false
	}
	return d.slots[i], true
}

// rebuild replaces the backing store with a fresh one of the current
// capacity, copying every live slot for which keep returns true. On
// allocation failure the array is unchanged.
func (d *DynArray[T]) rebuild(keep func(i int, v T) bool) (dropped int, err error) {
	fresh, err := d.alloc.Alloc(len(d.slots))
	if err != nil {
		return 0, fmt.Errorf("libclz: rebuild slot array: %w", err)
	}
	n := 0
	for i := 0; i < d.length; i++ {
		if !keep(i, d.slots[i]) {
			dropped++
			continue
		}
		fresh[n] = d.slots[i]
		n++
	}
	d.alloc.Free(d.slots)
	d.slots = fresh
	d.length = n
	return dropped, nil
}

// RemoveFirst removes the first slot equal to v. It reports whether a
// slot was removed; a missing v is a clean no-op. Capacity is retained.
func (d *DynArray[T]) RemoveFirst(v T) (bool, error) {
	at := d.Index(v)
	if at == NotFound {
		return false, nil
	}
	return d.RemoveAt(at)
}

// RemoveAll removes every slot equal to v and returns the number of
// slots removed. A missing v is a clean no-op returning 0.
func (d *DynArray[T]) RemoveAll(v T) (int, error) {
	if d.Index(v) == NotFound {
		return 0, nil
	}
	return d.rebuild(func(_ int, s T) bool { return s != v })
}

// RemoveAt removes the slot at index i, reporting false without
// modification when i is out of range.
func (d *DynArray[T]) RemoveAt(i int) (bool, error) {
	if i < 0 || i >= d.length {
		return false, nil
	}
	if _, err := d.rebuild(func(j int, _ T) bool { return j != i }); err != nil {
		return false, err
	}
	return true, nil
}

// PopLast removes and returns the last live slot. The bool is false
// when the array is empty or the removal rebuild failed; in the latter
// case the array is unchanged and the error is non-nil.
func (d *DynArray[T]) PopLast() (T, bool, error) {
	var zero T
	if d.length == 0 {
		return zero, false, nil
	}
	v := d.slots[d.length-1]
	ok, err := d.RemoveAt(d.length - 1)
	if !ok {
		return zero, false, err
	}
	return v, true, nil
}

// Clear resets the length to zero, retaining capacity. Live slots are
// zeroed so the array drops its references to the payloads.
func (d *DynArray[T]) Clear() {
	var zero T
	for i := 0; i < d.length; i++ {
		d.slots[i] = zero
	}
	d.length = 0
}

// Index returns the index of the first slot equal to v, or NotFound.
func (d *DynArray[T]) Index(v T) int {
	return d.IndexAfter(v, findCursorUnset)
}

// IndexAfter returns the index of the first slot equal to v strictly
// after index after, or NotFound. Threading the previous result back in
// walks successive occurrences without any state held in the array.
func (d *DynArray[T]) IndexAfter(v T, after int) int {
	if after < findCursorUnset {
		after = findCursorUnset
	}
	for i := after + 1; i < d.length; i++ {
		if d.slots[i] == v {
			return i
		}
	}
	return NotFound
}

// FindFirst returns the index of the first slot equal to v, or
// NotFound. It does not touch the resume cursor used by FindNext.
func (d *DynArray[T]) FindFirst(v T) int {
	return d.Index(v)
}

// FindNext resumes the stateful search session one past the embedded
// cursor, advancing the cursor on a hit and returning NotFound on a
// miss.
//
// The cursor only moves forward on hits and is never reset implicitly:
// a session that ends in NotFound leaves the cursor where it was, so
// every later FindNext for a value with no occurrence past the cursor
// also returns NotFound until FindReset is called. This trap is
// intended behavior, kept for compatibility; prefer the stateless
// [DynArray.IndexAfter] for independent searches.
func (d *DynArray[T]) FindNext(v T) int {
	for i := d.cursor + 1; i < d.length; i++ {
		if d.slots[i] == v {
			d.cursor = i
			return i
		}
	}
	return NotFound
}

// FindReset rewinds the resume cursor, starting a fresh FindNext session.
func (d *DynArray[T]) FindReset() {
	d.cursor = findCursorUnset
}

// ForEach calls fn for every live slot in order. fn must not mutate the
// array; behavior is undefined if it does.
func (d *DynArray[T]) ForEach(fn Consumer[T]) {
	for i := 0; i < d.length; i++ {
		fn(d.slots[i])
	}
}

// ForEachIf calls fn for every live slot satisfying pred, in order.
func (d *DynArray[T]) ForEachIf(pred Predicate[T], fn Consumer[T]) {
	for i := 0; i < d.length; i++ {
		if pred(d.slots[i]) {
			fn(d.slots[i])
		}
	}
}

// ForEachIfElse calls ifFn for slots satisfying pred and elseFn for the
// rest, visiting every live slot exactly once, in order.
func (d *DynArray[T]) ForEachIfElse(pred Predicate[T], ifFn, elseFn Consumer[T]) {
	for i := 0; i < d.length; i++ {
		if pred(d.slots[i]) {
			ifFn(d.slots[i])
		} else {
			elseFn(d.slots[i])
		}
	}
}

// Free returns the slot storage to the allocator. The array must not be
// used afterwards. Payloads are untouched; pair with your own cleanup
// or use OwnedDynArray.
func (d *DynArray[T]) Free() {
	d.alloc.Free(d.slots)
	d.slots = nil
	d.length = 0
	d.cursor = findCursorUnset
}
