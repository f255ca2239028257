// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestDecoderTransform(t *testing.T) {
	require := require.New(t)
	c := collidingCodec(t)

	got, err := c.NewDecoder().String("caf\xe9 \x90")
	require.NoError(err)
	require.Equal("café x", got)

	// 0xE9 needs two bytes of UTF-8.
	dst := make([]byte, 1)
	nDst, nSrc, err := c.NewDecoder().Transform(dst, []byte{0xE9}, true)
	require.ErrorIs(err, transform.ErrShortDst)
	require.Zero(nDst)
	require.Zero(nSrc)
}

func TestEncoderTransform(t *testing.T) {
	require := require.New(t)
	c := collidingCodec(t)

	got, err := c.NewEncoder().Bytes([]byte("café x €"))
	require.NoError(err)
	require.Equal([]byte{'c', 'a', 'f', 0xE9, ' ', 0x90, ' ', Fallback}, got)

	// A split rune waits for more input unless the source is exhausted.
	_, nSrc, err := c.NewEncoder().Transform(make([]byte, 8), []byte{'a', 0xC3}, false)
	require.ErrorIs(err, transform.ErrShortSrc)
	require.Equal(1, nSrc)

	nDst, _, err := c.NewEncoder().Transform(make([]byte, 8), []byte{'a', 0xC3}, true)
	require.NoError(err)
	require.Equal(2, nDst)
}

func TestTransformReaders(t *testing.T) {
	require := require.New(t)
	c := collidingCodec(t)

	text := strings.Repeat("héllo wörld ", 2048)
	encoded, err := io.ReadAll(transform.NewReader(strings.NewReader(text), c.NewEncoder()))
	require.NoError(err)
	require.Equal(c.EncodeString(text), encoded)

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(encoded), c.NewDecoder()))
	require.NoError(err)
	require.Equal(text, string(decoded))
}

func TestEncoderWarnsReadOnly(t *testing.T) {
	for _, readOnly := range []bool{false, true} {
		c := New(newTestTable(t, Info{Name: "legacy", ReadOnly: readOnly}, nil))
		c.NewEncoder()

		pending := false
		c.warnOnce.Do(func() { pending = true })
		require.Equal(t, !readOnly, pending)
	}
}
