// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"fmt"
	"unicode/utf8"
)

// Info describes a legacy character set.
type Info struct {
	// Name is the short identifier token, e.g. "atascii".
	Name string
	// Description is the human-readable name of the character set.
	Description string
	// WebName is the IANA registered name, empty when there is none.
	WebName string
	// CodePage and WindowsCodePage are zero when the set has no number.
	CodePage        int
	WindowsCodePage int
	// ReadOnly marks tables whose encode direction is approximate. Encoding
	// through them is allowed but lossy.
	ReadOnly bool
	// Sentinel is the value stored for bytes that have no assigned
	// character. utf8.RuneError is always treated as unmapped as well.
	Sentinel rune
}

// Table is an immutable byte to rune mapping for one character set.
type Table struct {
	info   Info
	runes  [TableSize]rune
	mapped [TableSize / 64]uint64
}

// NewTable returns a table decoding byte b to runes[b].
func NewTable(info Info, runes [TableSize]rune) (*Table, error) {
	if info.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidTable)
	}
	t := &Table{
		info:  info,
		runes: runes,
	}
	for i, r := range runes {
		if !utf8.ValidRune(r) {
			return nil, fmt.Errorf("%w: byte 0x%02X maps to invalid rune %U", ErrInvalidTable, i, r)
		}
		if r == utf8.RuneError || r == info.Sentinel {
			continue
		}
		t.mapped[i/64] |= 1 << (uint(i) % 64)
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(info Info, runes [TableSize]rune) *Table {
	t, err := NewTable(info, runes)
	if err != nil {
		panic(err)
	}
	return t
}

// Decode returns the rune stored for b. Unmapped bytes yield the sentinel.
func (t *Table) Decode(b byte) rune {
	return t.runes[b]
}

// Mapped reports whether b has an assigned character.
func (t *Table) Mapped(b byte) bool {
	return t.mapped[b/64]&(1<<(b%64)) != 0
}

// Info returns the table metadata.
func (t *Table) Info() Info {
	return t.info
}

// Name returns the identifier token of the table.
func (t *Table) Name() string {
	return t.info.Name
}

// ReadOnly reports whether encoding through this table is approximate.
func (t *Table) ReadOnly() bool {
	return t.info.ReadOnly
}

// SingleByte is always true: every character is exactly one byte.
func (*Table) SingleByte() bool {
	return true
}

// Runes returns a copy of the decode table.
func (t *Table) Runes() [TableSize]rune {
	return t.runes
}

func (t *Table) String() string {
	return t.info.Description
}
