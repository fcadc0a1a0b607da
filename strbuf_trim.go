package libclz

import "strings"

// TrimRange keeps only the bytes in [start, end), discarding head and
// tail. An end past the content is clamped to the content length; a
// start at or past the length, or >= end, empties the buffer. The
// allocation size is untouched; call Compress to shrink.
func (b *StrBuf) TrimRange(start, end int) {
	n := b.Len()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= n || start >= end {
		b.data[0] = 0
		return
	}
	copy(b.data, b.data[start:end])
	b.data[end-start] = 0
}

// TrimLength cuts off everything at and past index length. A length at
// or beyond the content leaves the buffer unchanged.
func (b *StrBuf) TrimLength(length int) {
	b.TrimRange(0, length)
}

// TrimHead strips the run of leading spaces.
func (b *StrBuf) TrimHead() {
	b.TrimHeadByte(' ')
}

// TrimHeadByte strips the run of leading c bytes.
func (b *StrBuf) TrimHeadByte(c byte) {
	n := b.Len()
	i := 0
	for i < n && b.data[i] == c {
		i++
	}
	if i == 0 {
		return
	}
	copy(b.data, b.data[i:n])
	b.data[n-i] = 0
}

// TrimTail strips the run of trailing spaces.
func (b *StrBuf) TrimTail() {
	b.TrimTailByte(' ')
}

// TrimTailByte strips the run of trailing c bytes.
func (b *StrBuf) TrimTailByte(c byte) {
	n := b.Len()
	for n > 0 && b.data[n-1] == c {
		n--
	}
	b.data[n] = 0
}

// PadHead prepends repeated c until the content is exactly targetLen
// bytes. It reports false without modification when the content is
// already longer than targetLen, and succeeds trivially at equality.
func (b *StrBuf) PadHead(c byte, targetLen int) (bool, error) {
	n := b.Len()
	if n > targetLen {
		return false, nil
	}
	if n == targetLen {
		return true, nil
	}
	if err := b.insertN(strings.Repeat(string(c), targetLen-n), 0, targetLen-n); err != nil {
		return false, err
	}
	return true, nil
}

// PadTail appends repeated c until the content is exactly targetLen
// bytes. Same edge contract as PadHead.
func (b *StrBuf) PadTail(c byte, targetLen int) (bool, error) {
	n := b.Len()
	if n > targetLen {
		return false, nil
	}
	if n == targetLen {
		return true, nil
	}
	if err := b.appendN(strings.Repeat(string(c), targetLen-n), targetLen-n); err != nil {
		return false, err
	}
	return true, nil
}
