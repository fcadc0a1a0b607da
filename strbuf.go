package libclz

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/ess3sq/libclz/internal/alloc"
)

// MinStrBufAlloc is the smallest allocation size of a StrBuf. Every
// allocation size is a power of two >= this value.
const MinStrBufAlloc = 32

// ErrIndexOutOfRange rejects an index or range outside the buffer's
// logical content.
var ErrIndexOutOfRange = errors.New("libclz: index out of range")

// StrBuf is a growable buffer holding a null-terminated byte sequence.
// The allocation size is carried by the backing store itself (the store
// is always exactly allocation-size bytes long), so the struct pairs
// the size with the payload without any pointer arithmetic; String and
// Bytes expose the payload view that generic string consumers see.
//
// The logical length is always derived from the terminator position,
// never tracked separately, and the invariant
// AllocSize() >= Len()+1 holds before and after every operation. A
// stored byte sequence therefore cannot contain 0x00; the first zero
// byte is the terminator.
//
// The zero value is not usable; construct with one of the NewStrBuf
// constructors. Instances must not be copied (two handles would share
// one backing store); use Clone for an independent copy. After Free the
// buffer must not be used.
type StrBuf struct {
	data  []byte // len(data) == allocation size; payload ends at first 0x00.
	alloc alloc.Allocator
}

// NewStrBuf constructs an empty buffer with the default allocation
// size MinStrBufAlloc.
func NewStrBuf(opts ...Option) (*StrBuf, error) {
	return NewStrBufSize(MinStrBufAlloc, opts...)
}

// NewStrBufSize constructs an empty buffer whose allocation size is the
// smallest power of two >= size (and >= MinStrBufAlloc).
func NewStrBufSize(size int, opts ...Option) (*StrBuf, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	data, err := o.allocator.Alloc(alloc.NextPow2(size, MinStrBufAlloc))
	if err != nil {
		return nil, fmt.Errorf("libclz: allocate strbuf: %w", err)
	}
	data[0] = 0 // Reused allocator regions are not zeroed.
	return &StrBuf{data: data, alloc: o.allocator}, nil
}

// NewStrBufString constructs the minimum-size buffer that fits s and
// copies s into it.
func NewStrBufString(s string, opts ...Option) (*StrBuf, error) {
	b, err := NewStrBufSize(len(s)+1, opts...)
	if err != nil {
		return nil, err
	}
	copy(b.data, s)
	b.data[len(s)] = 0
	return b, nil
}

// Clone returns an independent copy of the buffer. With keepCap the
// copy matches the donor's allocation size exactly; otherwise it gets
// the minimum power-of-two size that fits the donor's current content.
func (b *StrBuf) Clone(keepCap bool) (*StrBuf, error) {
	size := len(b.data)
	if !keepCap {
		size = alloc.NextPow2(b.Len()+1, MinStrBufAlloc)
	}
	fresh, err := b.alloc.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("libclz: clone strbuf: %w", err)
	}
	n := b.Len()
	copy(fresh, b.data[:n])
	fresh[n] = 0
	return &StrBuf{data: fresh, alloc: b.alloc}, nil
}

// Len returns the logical length: the number of bytes before the
// terminator. It is recomputed from the terminator position on every
// call.
func (b *StrBuf) Len() int {
	i := bytes.IndexByte(b.data, 0)
	if i < 0 {
		panic(errors.New("libclz: invariant violation: strbuf missing terminator"))
	}
	return i
}

// AllocSize returns the total allocation size in bytes.
func (b *StrBuf) AllocSize() int { return len(b.data) }

// String returns the payload as a string, without the terminator.
func (b *StrBuf) String() string { return string(b.data[:b.Len()]) }

// Bytes returns the payload view without the terminator. The slice
// aliases the backing store and is invalidated by any growing or
// rebuilding operation.
func (b *StrBuf) Bytes() []byte { return b.data[:b.Len()] }

// Sum64 returns the xxhash digest of the logical content, for callers
// keying maps or caches by buffer content.
func (b *StrBuf) Sum64() uint64 { return xxhash.Sum64(b.Bytes()) }

// Grow ensures the allocation size is at least min bytes. It is a no-op
// when the buffer is already large enough; otherwise the backing store
// is reallocated to the smallest power of two >= min, the content
// copied over, and the old region freed. On failure the buffer is
// unchanged. Grow never shrinks; see Compress.
func (b *StrBuf) Grow(min int) error {
	if len(b.data) >= min {
		return nil
	}
	fresh, err := b.alloc.Alloc(alloc.NextPow2(min, MinStrBufAlloc))
	if err != nil {
		return fmt.Errorf("libclz: grow strbuf: %w", err)
	}
	n := b.Len()
	copy(fresh, b.data[:n])
	fresh[n] = 0
	b.alloc.Free(b.data)
	b.data = fresh
	return nil
}

// Compress shrinks the allocation to the minimum power of two that fits
// the current content. It is the only operation that ever reduces the
// allocation size.
func (b *StrBuf) Compress() error {
	n := b.Len()
	size := alloc.NextPow2(n+1, MinStrBufAlloc)
	if size == len(b.data) {
		return nil
	}
	fresh, err := b.alloc.Alloc(size)
	if err != nil {
		return fmt.Errorf("libclz: compress strbuf: %w", err)
	}
	copy(fresh, b.data[:n])
	fresh[n] = 0
	b.alloc.Free(b.data)
	b.data = fresh
	return nil
}

// Free returns the backing store to the allocator. A StrBuf must only
// ever be released through Free, which knows about the allocation
// header; the buffer must not be used afterwards.
func (b *StrBuf) Free() {
	b.alloc.Free(b.data)
	b.data = nil
}

// growSize returns the allocation size for a rebuild that must hold at
// least min bytes: the smallest power of two >= min, but never below
// the current allocation size (rebuilds do not shrink).
func (b *StrBuf) growSize(min int) int {
	size := alloc.NextPow2(min, MinStrBufAlloc)
	if size < len(b.data) {
		size = len(b.data)
	}
	return size
}

// rebuildFrom replaces the backing store with a fresh region of exactly
// size bytes holding the concatenation of pieces plus the terminator.
// The pieces may alias the current backing store; the old region is
// only freed after the fresh one is fully populated. On allocation
// failure the buffer is unchanged.
func (b *StrBuf) rebuildFrom(size int, pieces ...[]byte) error {
	fresh, err := b.alloc.Alloc(size)
	if err != nil {
		return fmt.Errorf("libclz: rebuild strbuf: %w", err)
	}
	n := 0
	for _, p := range pieces {
		copy(fresh[n:], p)
		n += len(p)
	}
	fresh[n] = 0
	b.alloc.Free(b.data)
	b.data = fresh
	return nil
}
