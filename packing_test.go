// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackerDirectoryEntry(t *testing.T) {
	require := require.New(t)
	c := collidingCodec(t)

	p := NewPacker(c, 12)
	p.PackByte(0x42)
	p.PackText("NAME", 8, ' ')
	p.PackText("x", 3, 0)
	require.NoError(p.Err)
	require.Equal([]byte{0x42, 'N', 'A', 'M', 'E', ' ', ' ', ' ', ' ', 0x90, 0, 0}, p.Bytes)

	r := PackerFromBytes(c, p.Bytes)
	require.Equal(byte(0x42), r.UnpackByte())
	require.Equal("NAME    ", r.UnpackText(8))
	require.Equal("x\x00\x00", r.UnpackText(3))
	require.Zero(r.Remaining())
	require.False(r.Errored())
}

func TestPackerErrorsStick(t *testing.T) {
	require := require.New(t)
	c := collidingCodec(t)

	p := NewPacker(c, 0)
	p.PackText("TOO LONG", 3, ' ')
	require.ErrorIs(p.Err, ErrTextTooLong)
	p.PackByte(1)
	require.Empty(p.Bytes)

	p = NewPacker(c, -1)
	p.PackText("", -1, ' ')
	require.ErrorIs(p.Err, ErrNegativeLength)

	r := PackerFromBytes(c, []byte("AB"))
	require.Empty(r.UnpackText(3))
	require.ErrorIs(r.Err, ErrInsufficientLength)
	require.Zero(r.UnpackByte())
	require.Equal(2, r.Remaining())

	r = PackerFromBytes(c, nil)
	require.Zero(r.UnpackByte())
	require.ErrorIs(r.Err, ErrInsufficientLength)

	r = PackerFromBytes(c, []byte("AB"))
	require.Empty(r.UnpackText(-1))
	require.ErrorIs(r.Err, ErrNegativeLength)
}

func TestPackerIntegers(t *testing.T) {
	require := require.New(t)
	c := collidingCodec(t)

	p := NewPacker(c, 0)
	p.PackBool(true)
	p.PackShort(0x0169)
	p.PackInt(0xDEADBEEF)
	require.NoError(p.Err)
	require.Equal([]byte{1, 0x69, 0x01, 0xEF, 0xBE, 0xAD, 0xDE}, p.Bytes)

	r := PackerFromBytes(c, p.Bytes)
	require.True(r.UnpackBool())
	require.Equal(uint16(0x0169), r.UnpackShort())
	require.Equal(uint32(0xDEADBEEF), r.UnpackInt())
	require.Zero(r.UnpackShort())
	require.ErrorIs(r.Err, ErrInsufficientLength)
}
