// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"encoding/binary"
	"errors"
)

// Common errors
var (
	ErrInsufficientLength = errors.New("packing: insufficient length")
	ErrNegativeLength     = errors.New("packing: negative length")
	ErrTextTooLong        = errors.New("packing: text longer than field")
)

// Packer reads and writes fixed-width text fields of a legacy record, such
// as a disk directory entry, through a Codec. The first error sticks in Err
// and turns every later call into a no-op.
type Packer struct {
	Codec  *Codec
	Bytes  []byte
	Offset int
	Err    error
}

// NewPacker returns an empty Packer with room for size bytes
func NewPacker(c *Codec, size int) *Packer {
	if size < 0 {
		size = 0
	}
	return &Packer{
		Codec: c,
		Bytes: make([]byte, 0, size),
	}
}

// PackerFromBytes returns a Packer reading b from the start
func PackerFromBytes(c *Codec, b []byte) *Packer {
	return &Packer{
		Codec: c,
		Bytes: b,
	}
}

// Remaining returns the number of bytes remaining to read
func (p *Packer) Remaining() int {
	return len(p.Bytes) - p.Offset
}

// Errored returns true if there's been an error
func (p *Packer) Errored() bool {
	return p.Err != nil
}

// expand ensures capacity for n more bytes
func (p *Packer) expand(n int) {
	if p.Err != nil {
		return
	}
	needed := p.Offset + n
	if needed > cap(p.Bytes) {
		newCap := max(cap(p.Bytes)*2, needed)
		newBytes := make([]byte, len(p.Bytes), newCap)
		copy(newBytes, p.Bytes)
		p.Bytes = newBytes
	}
	if needed > len(p.Bytes) {
		p.Bytes = p.Bytes[:needed]
	}
}

// PackByte packs a raw byte
func (p *Packer) PackByte(val byte) {
	p.expand(1)
	if p.Err != nil {
		return
	}
	p.Bytes[p.Offset] = val
	p.Offset++
}

// UnpackByte unpacks a raw byte
func (p *Packer) UnpackByte() byte {
	if p.Err != nil {
		return 0
	}
	if p.Offset >= len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return 0
	}
	val := p.Bytes[p.Offset]
	p.Offset++
	return val
}

// PackBool packs a bool as one byte
func (p *Packer) PackBool(val bool) {
	if val {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
}

// UnpackBool unpacks a bool
func (p *Packer) UnpackBool() bool {
	return p.UnpackByte() != 0
}

// PackShort packs a little-endian uint16, as used by 6502 disk formats
func (p *Packer) PackShort(val uint16) {
	p.expand(2)
	if p.Err != nil {
		return
	}
	binary.LittleEndian.PutUint16(p.Bytes[p.Offset:], val)
	p.Offset += 2
}

// UnpackShort unpacks a little-endian uint16
func (p *Packer) UnpackShort() uint16 {
	if p.Err != nil {
		return 0
	}
	if p.Offset+2 > len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return 0
	}
	val := binary.LittleEndian.Uint16(p.Bytes[p.Offset:])
	p.Offset += 2
	return val
}

// PackInt packs a little-endian uint32
func (p *Packer) PackInt(val uint32) {
	p.expand(4)
	if p.Err != nil {
		return
	}
	binary.LittleEndian.PutUint32(p.Bytes[p.Offset:], val)
	p.Offset += 4
}

// UnpackInt unpacks a little-endian uint32
func (p *Packer) UnpackInt() uint32 {
	if p.Err != nil {
		return 0
	}
	if p.Offset+4 > len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return 0
	}
	val := binary.LittleEndian.Uint32(p.Bytes[p.Offset:])
	p.Offset += 4
	return val
}

// PackText encodes s into a field of width bytes, right-padded with pad.
func (p *Packer) PackText(s string, width int, pad byte) {
	if p.Err != nil {
		return
	}
	if width < 0 {
		p.Err = ErrNegativeLength
		return
	}
	runes := []rune(s)
	if len(runes) > width {
		p.Err = ErrTextTooLong
		return
	}
	p.expand(width)
	if p.Err != nil {
		return
	}
	field := p.Bytes[p.Offset : p.Offset+width]
	p.Codec.encode(field[:len(runes)], runes)
	for i := len(runes); i < width; i++ {
		field[i] = pad
	}
	p.Offset += width
}

// UnpackText decodes a field of width bytes.
func (p *Packer) UnpackText(width int) string {
	if p.Err != nil {
		return ""
	}
	if width < 0 {
		p.Err = ErrNegativeLength
		return ""
	}
	if p.Offset+width > len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return ""
	}
	runes, err := p.Codec.Decode(p.Bytes, p.Offset, width)
	if err != nil {
		p.Err = err
		return ""
	}
	p.Offset += width
	return string(runes)
}
