// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// identityRunes decodes byte b to rune b, like ISO 8859-1.
func identityRunes() [TableSize]rune {
	var runes [TableSize]rune
	for i := range runes {
		runes[i] = rune(i)
	}
	return runes
}

func newTestTable(t *testing.T, info Info, edit func(*[TableSize]rune)) *Table {
	runes := identityRunes()
	if edit != nil {
		edit(&runes)
	}
	table, err := NewTable(info, runes)
	require.NoError(t, err)
	return table
}

func TestNewTableRequiresName(t *testing.T) {
	_, err := NewTable(Info{}, identityRunes())
	require.ErrorIs(t, err, ErrInvalidTable)

	require.Panics(t, func() {
		MustNewTable(Info{}, identityRunes())
	})
}

func TestNewTableRejectsSurrogates(t *testing.T) {
	runes := identityRunes()
	runes[0x80] = 0xD800
	_, err := NewTable(Info{Name: "broken"}, runes)
	require.ErrorIs(t, err, ErrInvalidTable)
}

func TestTableSentinel(t *testing.T) {
	require := require.New(t)

	edit := func(runes *[TableSize]rune) {
		runes[0x80] = 0
		runes[0x81] = utf8.RuneError
	}

	// NUL at 0x00 is a real character when the sentinel is RuneError.
	replacement := newTestTable(t, Info{Name: "replacement", Sentinel: utf8.RuneError}, edit)
	require.True(replacement.Mapped(0x00))
	require.True(replacement.Mapped(0x80))
	require.False(replacement.Mapped(0x81))

	nul := newTestTable(t, Info{Name: "nul"}, edit)
	require.False(nul.Mapped(0x00))
	require.False(nul.Mapped(0x80))
	require.False(nul.Mapped(0x81))
	require.True(nul.Mapped(0x41))

	// Unmapped bytes still decode to whatever the table stores.
	require.Equal(rune(0), nul.Decode(0x80))
	require.Equal(utf8.RuneError, nul.Decode(0x81))
}

func TestTableIsImmutable(t *testing.T) {
	require := require.New(t)

	runes := identityRunes()
	table, err := NewTable(Info{Name: "latin"}, runes)
	require.NoError(err)

	runes[0x41] = 'Z'
	require.Equal('A', table.Decode(0x41))

	cp := table.Runes()
	cp[0x41] = 'Z'
	require.Equal('A', table.Decode(0x41))
}

func TestTableInfo(t *testing.T) {
	require := require.New(t)

	info := Info{
		Name:        "latin",
		Description: "Identity",
		CodePage:    28591,
		ReadOnly:    true,
	}
	table := newTestTable(t, info, nil)
	require.Equal(info, table.Info())
	require.Equal("latin", table.Name())
	require.True(table.ReadOnly())
	require.True(table.SingleByte())
	require.Equal("Identity", table.String())
}
