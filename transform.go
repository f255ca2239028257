// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var _ encoding.Encoding = (*Codec)(nil)

// NewDecoder returns a Decoder converting from the character set to UTF-8.
func (c *Codec) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: decoder{table: c.table}}
}

// NewEncoder returns an Encoder converting from UTF-8 to the character
// set. Runes missing from the table, and invalid UTF-8, become Fallback.
func (c *Codec) NewEncoder() *encoding.Encoder {
	c.warnReadOnly()
	return &encoding.Encoder{Transformer: encoder{bytes: c.reverse()}}
}

type decoder struct {
	transform.NopResetter
	table *Table
}

func (d decoder) Transform(dst, src []byte, _ bool) (int, int, error) {
	var nDst, nSrc int
	for _, b := range src {
		r := d.table.runes[b]
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

type encoder struct {
	transform.NopResetter
	bytes map[rune]byte
}

func (e encoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		b, ok := e.bytes[r]
		if !ok {
			b = Fallback
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}
