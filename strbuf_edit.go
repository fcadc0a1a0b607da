package libclz

import (
	"bytes"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IndexByte returns the position of the first occurrence of c in the
// content, or NotFound.
func (b *StrBuf) IndexByte(c byte) int {
	return bytes.IndexByte(b.Bytes(), c)
}

// LastIndexByte returns the position of the last occurrence of c, or
// NotFound.
func (b *StrBuf) LastIndexByte(c byte) int {
	return bytes.LastIndexByte(b.Bytes(), c)
}

// Index returns the position of the first occurrence of the substring
// sub, or NotFound. An empty sub matches at position 0.
func (b *StrBuf) Index(sub string) int {
	return bytes.Index(b.Bytes(), []byte(sub))
}

// LastIndex returns the position of the last occurrence of sub, or
// NotFound.
func (b *StrBuf) LastIndex(sub string) int {
	return bytes.LastIndex(b.Bytes(), []byte(sub))
}

// ReplaceFirstByte replaces the first occurrence of c with v in place
// and returns its position, or NotFound if c does not occur. A zero v
// would truncate the content and is the caller's responsibility to
// avoid.
func (b *StrBuf) ReplaceFirstByte(c, v byte) int {
	i := b.IndexByte(c)
	if i == NotFound {
		return NotFound
	}
	b.data[i] = v
	return i
}

// ReplaceAllByte replaces every occurrence of c with v in place and
// returns the number of replacements. Byte-for-byte substitution never
// changes the length, so no reallocation happens.
func (b *StrBuf) ReplaceAllByte(c, v byte) int {
	count := 0
	for i, n := 0, b.Len(); i < n; i++ {
		if b.data[i] == c {
			b.data[i] = v
			count++
		}
	}
	return count
}

// ReplaceFirst replaces the first occurrence of the substring old with
// new and returns its position, or NotFound if old does not occur. On
// allocation failure the buffer is unchanged.
func (b *StrBuf) ReplaceFirst(old, new string) (int, error) {
	i := b.Index(old)
	if i == NotFound {
		return NotFound, nil
	}
	n := b.Len()
	err := b.rebuildFrom(
		b.growSize(n-len(old)+len(new)+1),
		b.data[:i],
		[]byte(new),
		b.data[i+len(old):n],
	)
	if err != nil {
		return NotFound, err
	}
	return i, nil
}

// ReplaceAll replaces every occurrence of the substring old with new
// and returns the number of replacements. The scan resumes strictly
// after each inserted replacement, so a new that contains old cannot
// cause rescanning. An empty old is a no-op. On allocation failure the
// buffer is unchanged.
func (b *StrBuf) ReplaceAll(old, new string) (int, error) {
	if len(old) == 0 {
		return 0, nil
	}
	content := b.Bytes()
	needle := []byte(old)

	count := bytes.Count(content, needle)
	if count == 0 {
		return 0, nil
	}

	// Assemble the pieces up front so the rebuild stays a single
	// all-or-nothing swap.
	pieces := make([][]byte, 0, 2*count+1)
	pos := 0
	for {
		i := bytes.Index(content[pos:], needle)
		if i == NotFound {
			break
		}
		pieces = append(pieces, content[pos:pos+i], []byte(new))
		pos += i + len(needle)
	}
	pieces = append(pieces, content[pos:])

	size := b.growSize(len(content) + count*(len(new)-len(old)) + 1)
	if err := b.rebuildFrom(size, pieces...); err != nil {
		return 0, err
	}
	return count, nil
}

// RemoveAt removes the byte at the given index, closing the gap. It
// reports false without modification when index is out of range.
func (b *StrBuf) RemoveAt(index int) (bool, error) {
	return b.RemoveRange(index, index+1)
}

// RemoveRange removes the bytes in [start, end), closing the gap. An
// end past the content is clamped. Invalid ranges (start >= end, start
// out of range) report false without modification. The rebuilt buffer
// keeps the same allocation size.
func (b *StrBuf) RemoveRange(start, end int) (bool, error) {
	n := b.Len()
	if start < 0 || start >= end || start >= n {
		return false, nil
	}
	if end > n {
		end = n
	}
	err := b.rebuildFrom(len(b.data), b.data[:start], b.data[end:n])
	if err != nil {
		return false, err
	}
	return true, nil
}

// ToLower lowercases the ASCII letters of the content in place.
func (b *StrBuf) ToLower() {
	for i, n := 0, b.Len(); i < n; i++ {
		if c := b.data[i]; 'A' <= c && c <= 'Z' {
			b.data[i] = c + ('a' - 'A')
		}
	}
}

// ToUpper uppercases the ASCII letters of the content in place.
func (b *StrBuf) ToUpper() {
	for i, n := 0, b.Len(); i < n; i++ {
		if c := b.data[i]; 'a' <= c && c <= 'z' {
			b.data[i] = c - ('a' - 'A')
		}
	}
}

// ToLowerLocale lowercases the content using the casing rules of the
// given language tag. Unlike the ASCII variant this can change the
// content length, so the buffer may grow.
func (b *StrBuf) ToLowerLocale(tag language.Tag) error {
	return b.recase(cases.Lower(tag))
}

// ToUpperLocale uppercases the content using the casing rules of the
// given language tag.
func (b *StrBuf) ToUpperLocale(tag language.Tag) error {
	return b.recase(cases.Upper(tag))
}

func (b *StrBuf) recase(c cases.Caser) error {
	s := c.String(b.String())
	if err := b.Grow(len(s) + 1); err != nil {
		return err
	}
	copy(b.data, s)
	b.data[len(s)] = 0
	return nil
}

// Reverse reverses the logical content in place.
func (b *StrBuf) Reverse() {
	for i, j := 0, b.Len()-1; i < j; i, j = i+1, j-1 {
		b.data[i], b.data[j] = b.data[j], b.data[i]
	}
}
