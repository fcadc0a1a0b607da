package libclz

import "strconv"

// AppendByte appends a single byte.
func (b *StrBuf) AppendByte(c byte) error {
	n := b.Len()
	if err := b.Grow(n + 2); err != nil {
		return err
	}
	b.data[n] = c
	b.data[n+1] = 0
	return nil
}

// AppendString appends s.
func (b *StrBuf) AppendString(s string) error {
	return b.appendN(s, len(s))
}

// AppendStringN appends at most the first n bytes of s, or all of s if
// it is shorter.
func (b *StrBuf) AppendStringN(s string, n int) error {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return b.appendN(s, n)
}

// AppendInt32 appends the decimal text of i.
func (b *StrBuf) AppendInt32(i int32) error {
	return b.AppendString(strconv.FormatInt(int64(i), 10))
}

// AppendUint32 appends the decimal text of u.
func (b *StrBuf) AppendUint32(u uint32) error {
	return b.AppendString(strconv.FormatUint(uint64(u), 10))
}

// AppendInt64 appends the decimal text of i.
func (b *StrBuf) AppendInt64(i int64) error {
	return b.AppendString(strconv.FormatInt(i, 10))
}

// AppendUint64 appends the decimal text of u.
func (b *StrBuf) AppendUint64(u uint64) error {
	return b.AppendString(strconv.FormatUint(u, 10))
}

func (b *StrBuf) appendN(s string, n int) error {
	cur := b.Len()
	if err := b.Grow(cur + n + 1); err != nil {
		return err
	}
	copy(b.data[cur:], s[:n])
	b.data[cur+n] = 0
	return nil
}

// InsertByte inserts c at the given byte index. Inserting at
// index == Len() is the append case; a larger index is rejected with
// ErrIndexOutOfRange.
func (b *StrBuf) InsertByte(c byte, index int) error {
	return b.insertN(string(c), index, 1)
}

// InsertString inserts s at the given byte index.
func (b *StrBuf) InsertString(s string, index int) error {
	return b.insertN(s, index, len(s))
}

// InsertStringN inserts at most the first maxLen bytes of s at the
// given byte index.
func (b *StrBuf) InsertStringN(s string, index, maxLen int) error {
	if maxLen < 0 {
		maxLen = 0
	}
	if maxLen > len(s) {
		maxLen = len(s)
	}
	return b.insertN(s, index, maxLen)
}

// InsertInt32 inserts the decimal text of i at the given byte index.
func (b *StrBuf) InsertInt32(i int32, index int) error {
	return b.InsertString(strconv.FormatInt(int64(i), 10), index)
}

// InsertUint32 inserts the decimal text of u at the given byte index.
func (b *StrBuf) InsertUint32(u uint32, index int) error {
	return b.InsertString(strconv.FormatUint(uint64(u), 10), index)
}

// InsertInt64 inserts the decimal text of i at the given byte index.
func (b *StrBuf) InsertInt64(i int64, index int) error {
	return b.InsertString(strconv.FormatInt(i, 10), index)
}

// InsertUint64 inserts the decimal text of u at the given byte index.
func (b *StrBuf) InsertUint64(u uint64, index int) error {
	return b.InsertString(strconv.FormatUint(u, 10), index)
}

// insertN rebuilds the buffer from three pieces (prefix, insertion,
// suffix) so that correctness does not depend on how the pieces overlap
// the original storage region.
func (b *StrBuf) insertN(s string, index, n int) error {
	cur := b.Len()
	if index < 0 || index > cur {
		return ErrIndexOutOfRange
	}
	return b.rebuildFrom(
		b.growSize(cur+n+1),
		b.data[:index],
		[]byte(s[:n]),
		b.data[index:cur],
	)
}
