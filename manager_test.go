// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManagerRegister(t *testing.T) {
	require := require.New(t)

	m := NewManager()
	latin := newTestTable(t, Info{Name: "Latin", WebName: "iso-8859-1"}, nil)
	require.NoError(m.Register(latin))

	err := m.Register(newTestTable(t, Info{Name: "latin"}, nil))
	require.ErrorIs(err, ErrDuplicateEncoding)

	err = m.Register(newTestTable(t, Info{Name: "other", WebName: "ISO-8859-1"}, nil))
	require.ErrorIs(err, ErrDuplicateEncoding)

	require.ErrorIs(m.Register(nil), ErrInvalidTable)

	require.Equal([]string{"Latin"}, m.Names())
}

func TestManagerGet(t *testing.T) {
	require := require.New(t)

	m := NewManager()
	latin := newTestTable(t, Info{Name: "latin", WebName: "iso-8859-1"}, nil)
	require.NoError(m.Register(latin))

	c, err := m.Get(" LATIN ")
	require.NoError(err)
	require.Equal(latin, c.Table())

	byWebName, err := m.Get("iso-8859-1")
	require.NoError(err)
	require.Same(c, byWebName)

	_, err = m.Get("ebcdic")
	require.ErrorIs(err, ErrUnknownEncoding)
}

func TestManagerConvert(t *testing.T) {
	require := require.New(t)

	m := NewManager()
	require.NoError(m.Register(newTestTable(t, Info{Name: "latin"}, nil)))

	text, err := m.Decode("latin", []byte{'c', 0xE9})
	require.NoError(err)
	require.Equal("cé", text)

	bytes, err := m.Encode("latin", "cé€")
	require.NoError(err)
	require.Equal([]byte{'c', 0xE9, Fallback}, bytes)

	_, err = m.Decode("missing", nil)
	require.ErrorIs(err, ErrUnknownEncoding)
	_, err = m.Encode("missing", "")
	require.ErrorIs(err, ErrUnknownEncoding)
}

func TestManagerNamesSorted(t *testing.T) {
	require := require.New(t)

	m := NewManager()
	require.NoError(RegisterAll(m,
		newTestTable(t, Info{Name: "zx81"}, nil),
		newTestTable(t, Info{Name: "atari"}, nil),
		newTestTable(t, Info{Name: "mac"}, nil),
	))
	names := m.Names()
	require.Equal([]string{"atari", "mac", "zx81"}, names)

	names[0] = "changed"
	require.Equal("atari", m.Names()[0])
}

func TestRegisterAllStopsAtFirstError(t *testing.T) {
	require := require.New(t)

	m := NewManager()
	err := RegisterAll(m,
		newTestTable(t, Info{Name: "a"}, nil),
		newTestTable(t, Info{Name: "a"}, nil),
		newTestTable(t, Info{Name: "b"}, nil),
	)
	require.ErrorIs(err, ErrDuplicateEncoding)
	require.Equal([]string{"a"}, m.Names())
}

func TestErrs(t *testing.T) {
	require := require.New(t)

	errs := Errs{}
	require.False(errs.Errored())
	errs.Add(nil, ErrShortBuffer, ErrOutOfRange)
	errs.Add(ErrInvalidTable)
	require.True(errs.Errored())
	require.ErrorIs(errs.Err, ErrShortBuffer)
}
