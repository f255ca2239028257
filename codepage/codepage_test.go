// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codepage

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/charset"
)

func TestATASCII(t *testing.T) {
	require := require.New(t)

	c, err := Default.Get("atascii")
	require.NoError(err)

	tests := []struct {
		b byte
		r rune
	}{
		{0x41, 'A'},
		{0x00, '♥'},
		{0x9B, '\r'},
		{0xFD, '\a'},
		{0x7B, '♠'},
	}
	for _, test := range tests {
		runes, err := c.Decode([]byte{test.b}, 0, 1)
		require.NoError(err)
		require.Equal([]rune{test.r}, runes)

		bytes, err := c.Encode([]rune{test.r}, 0, 1)
		require.NoError(err)
		require.Equal([]byte{test.b}, bytes)
	}

	require.Equal([]byte{charset.Fallback}, c.EncodeString("€"))
	// NUL marks the unused inverse-video half, so it has no encoding.
	require.Equal([]byte{charset.Fallback}, c.EncodeString("\x00"))
	require.Equal(rune(0), ATASCII.Decode(0x80))
	require.False(ATASCII.Mapped(0x80))
	require.Equal(utf8.RuneError, ATASCII.Decode(0x02))
	require.False(ATASCII.Mapped(0x02))
}

func TestApple2e(t *testing.T) {
	require := require.New(t)

	c := charset.New(Apple2e)
	require.Equal("HELLO, world", c.DecodeString([]byte{0x68, 0x65, 0x6C, 0x6C, 0x6F, 0x0C, 0x00, 0x37, 0x2F, 0x32, 0x2C, 0x24}))
	require.Equal([]byte{0x68, 0x29}, c.EncodeString("Hi"))
	require.Equal('π', Apple2e.Decode(0x60))
	require.False(Apple2e.Mapped(0x5A))
}

func TestGEMCollisions(t *testing.T) {
	require := require.New(t)

	c := charset.New(GEM)
	require.Equal('û', GEM.Decode(0x96))
	require.Equal('û', GEM.Decode(0x9B))
	require.Equal(byte(0x9B), c.EncodeRune('û'))
	require.Equal(byte(0xB9), c.EncodeRune('§'))
	require.Equal(byte(0xBC), c.EncodeRune('¶'))

	// GEM uses U+FFFD for empty slots, so byte 0x00 is a real NUL.
	require.True(GEM.Mapped(0x00))
	require.Equal(byte(0x00), c.EncodeRune(0))
	require.False(GEM.Mapped(0x09))
}

func TestMacFarsiCollisions(t *testing.T) {
	require := require.New(t)

	c := charset.New(MacFarsi)
	require.Equal(' ', MacFarsi.Decode(0x20))
	require.Equal(' ', MacFarsi.Decode(0xA0))
	require.Equal(byte(0xA0), c.EncodeRune(' '))
	require.Equal(byte(0xDB), c.EncodeRune('['))
	require.Equal(byte(0x41), c.EncodeRune('A'))
	require.Equal(byte(0xC7), c.EncodeRune('ا'))
	require.Equal(byte(0xB0), c.EncodeRune('۰'))
}

func TestMetadata(t *testing.T) {
	tests := []struct {
		table    *charset.Table
		name     string
		readOnly bool
		codePage int
		mapped   int
		distinct int
	}{
		{ATASCII, "atascii", false, 0, 128, 128},
		{Apple2e, "apple2e", true, 0, 125, 125},
		{GEM, "gem", false, 0, 247, 244},
		{MacFarsi, "x-mac-farsi", true, 10014, 256, 230},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			require.Equal(test.name, test.table.Name())
			require.Equal(test.readOnly, test.table.ReadOnly())
			require.Equal(test.codePage, test.table.Info().CodePage)
			require.True(test.table.SingleByte())
			require.NotEmpty(test.table.String())

			mapped := 0
			for i := 0; i < charset.TableSize; i++ {
				if test.table.Mapped(byte(i)) {
					mapped++
				}
			}
			require.Equal(test.mapped, mapped)
			require.Len(charset.New(test.table).ReverseMap(), test.distinct)
		})
	}
}

func TestDecodeIsTotal(t *testing.T) {
	src := make([]byte, charset.TableSize)
	for i := range src {
		src[i] = byte(i)
	}
	for _, table := range All() {
		c := charset.New(table)
		runes := c.DecodeAll(src)
		require.Len(t, runes, charset.TableSize, table.Name())
		require.Equal(t, runes, c.DecodeAll(src), table.Name())
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	for _, table := range All() {
		t.Run(table.Name(), func(t *testing.T) {
			require := require.New(t)
			c := charset.New(table)

			canonical := make(map[rune]byte)
			for i := 0; i < charset.TableSize; i++ {
				if table.Mapped(byte(i)) {
					canonical[table.Decode(byte(i))] = byte(i)
				}
			}
			for r, b := range canonical {
				out, err := c.Encode(c.DecodeAll([]byte{b}), 0, 1)
				require.NoError(err)
				require.Equal([]byte{b}, out, "%U", r)
			}
		})
	}
}

func TestEncodeIsTotal(t *testing.T) {
	runes := []rune{0, 'A', '€', utf8.RuneError, utf8.MaxRune, 0x1F600}
	for _, table := range All() {
		out := charset.New(table).EncodeAll(runes)
		require.Len(t, out, len(runes), table.Name())
	}
}

func TestDefault(t *testing.T) {
	require := require.New(t)

	require.Equal([]string{"apple2e", "atascii", "gem", "x-mac-farsi"}, Default.Names())

	m := charset.NewManager()
	require.NoError(Register(m))
	require.ErrorIs(Register(m), charset.ErrDuplicateEncoding)

	text, err := Default.Decode("GEM", []byte{0x9B, 0xE1})
	require.NoError(err)
	require.Equal("ûβ", text)
}
