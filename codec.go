// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"fmt"
	"sync"

	"github.com/golang/glog"
)

// Codec converts between a single-byte character set and Unicode.
//
// A Codec is safe for concurrent use. The reverse (rune to byte) map is
// built on the first encode and never modified afterwards.
type Codec struct {
	table *Table

	once  sync.Once
	bytes map[rune]byte

	warnOnce sync.Once
}

// New returns a codec bound to t.
func New(t *Table) *Codec {
	if t == nil {
		panic(ErrInvalidTable)
	}
	return &Codec{table: t}
}

// Table returns the table the codec is bound to.
func (c *Codec) Table() *Table {
	return c.table
}

// Name returns the identifier token of the bound table.
func (c *Codec) Name() string {
	return c.table.info.Name
}

func (c *Codec) String() string {
	return c.table.info.Description
}

// initialize scans the table low to high, so when two bytes decode to the
// same rune the higher byte wins.
func (c *Codec) initialize() {
	c.bytes = make(map[rune]byte, TableSize)
	for i := 0; i < TableSize; i++ {
		b := byte(i)
		if !c.table.Mapped(b) {
			continue
		}
		c.bytes[c.table.runes[b]] = b
	}
}

func (c *Codec) reverse() map[rune]byte {
	c.once.Do(c.initialize)
	return c.bytes
}

// ReverseMap returns a copy of the rune to byte map
func (c *Codec) ReverseMap() map[rune]byte {
	m := c.reverse()
	out := make(map[rune]byte, len(m))
	for r, b := range m {
		out[r] = b
	}
	return out
}

// checkRange validates [offset, offset+length) against a buffer of size n.
func checkRange(n, offset, length int) error {
	switch {
	case offset < 0:
		return fmt.Errorf("%w: negative offset %d", ErrOutOfRange, offset)
	case length < 0:
		return fmt.Errorf("%w: negative length %d", ErrOutOfRange, length)
	case offset > n || length > n-offset:
		return fmt.Errorf("%w: offset %d + length %d exceeds buffer size %d", ErrOutOfRange, offset, length, n)
	}
	return nil
}

func (c *Codec) decode(dst []rune, src []byte) {
	for i, b := range src {
		dst[i] = c.table.runes[b]
	}
}

// warnReadOnly logs once per codec when encoding through a read-only table.
func (c *Codec) warnReadOnly() {
	if !c.table.info.ReadOnly {
		return
	}
	c.warnOnce.Do(func() {
		glog.Warningf("charset: %s is read-only, encoded output is approximate", c.table.info.Name)
	})
}

func (c *Codec) encode(dst []byte, src []rune) {
	c.warnReadOnly()
	m := c.reverse()
	for i, r := range src {
		b, ok := m[r]
		if !ok {
			b = Fallback
		}
		dst[i] = b
	}
}

// Decode decodes src[offset:offset+length]. The result always holds
// exactly length runes.
func (c *Codec) Decode(src []byte, offset, length int) ([]rune, error) {
	if err := checkRange(len(src), offset, length); err != nil {
		return nil, err
	}
	out := make([]rune, length)
	c.decode(out, src[offset:offset+length])
	return out, nil
}

// DecodeAll decodes every byte of src.
func (c *Codec) DecodeAll(src []byte) []rune {
	out := make([]rune, len(src))
	c.decode(out, src)
	return out
}

// DecodeString decodes every byte of src into a string.
func (c *Codec) DecodeString(src []byte) string {
	return string(c.DecodeAll(src))
}

// DecodeInto decodes src[offset:offset+length] into dst starting at
// dstOffset and returns the number of runes written.
func (c *Codec) DecodeInto(dst []rune, dstOffset int, src []byte, offset, length int) (int, error) {
	if err := checkRange(len(src), offset, length); err != nil {
		return 0, err
	}
	if err := checkRange(len(dst), dstOffset, 0); err != nil {
		return 0, err
	}
	if len(dst)-dstOffset < length {
		return 0, fmt.Errorf("%w: need %d runes, have %d", ErrShortBuffer, length, len(dst)-dstOffset)
	}
	c.decode(dst[dstOffset:dstOffset+length], src[offset:offset+length])
	return length, nil
}

// Encode encodes src[offset:offset+length]. Runes missing from the table
// are written as Fallback; this never fails for a valid range.
func (c *Codec) Encode(src []rune, offset, length int) ([]byte, error) {
	if err := checkRange(len(src), offset, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	c.encode(out, src[offset:offset+length])
	return out, nil
}

// EncodeAll encodes every rune of src.
func (c *Codec) EncodeAll(src []rune) []byte {
	out := make([]byte, len(src))
	c.encode(out, src)
	return out
}

// EncodeString encodes s rune by rune. Invalid UTF-8 is written as Fallback.
func (c *Codec) EncodeString(s string) []byte {
	return c.EncodeAll([]rune(s))
}

// EncodeInto encodes src[offset:offset+length] into dst starting at
// dstOffset and returns the number of bytes written.
func (c *Codec) EncodeInto(dst []byte, dstOffset int, src []rune, offset, length int) (int, error) {
	if err := checkRange(len(src), offset, length); err != nil {
		return 0, err
	}
	if err := checkRange(len(dst), dstOffset, 0); err != nil {
		return 0, err
	}
	if len(dst)-dstOffset < length {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, length, len(dst)-dstOffset)
	}
	c.encode(dst[dstOffset:dstOffset+length], src[offset:offset+length])
	return length, nil
}

// EncodeRune returns the byte for r, or Fallback.
func (c *Codec) EncodeRune(r rune) byte {
	if b, ok := c.reverse()[r]; ok {
		return b
	}
	return Fallback
}

// Lookup returns the byte for r and whether the table maps it.
func (c *Codec) Lookup(r rune) (byte, bool) {
	b, ok := c.reverse()[r]
	return b, ok
}

// ByteCount returns the number of bytes needed to encode charCount runes.
func (*Codec) ByteCount(charCount int) (int, error) {
	if charCount < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrOutOfRange, charCount)
	}
	return charCount * ByteLen, nil
}

// CharCount returns the number of runes produced by decoding byteCount bytes.
func (*Codec) CharCount(byteCount int) (int, error) {
	if byteCount < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrOutOfRange, byteCount)
	}
	return byteCount * CharLen, nil
}

// Preamble is always empty; single-byte sets carry no byte order mark.
func (*Codec) Preamble() []byte {
	return nil
}
