// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codepage holds the legacy 8-bit character sets and a process-wide
// registry of them.
package codepage

import (
	"unicode/utf8"

	"github.com/luxfi/charset"
)

var (
	// ATASCII is the Atari 8-bit character set. Bytes 0x80-0xFF are the
	// inverse-video half and decode to U+0000, except the end-of-line
	// (0x9B) and bell (0xFD) controls.
	ATASCII = charset.MustNewTable(charset.Info{
		Name:        "atascii",
		Description: "Atari Standard Code for Information Interchange",
	}, atasciiRunes)

	// Apple2e is the Apple IIe character set.
	Apple2e = charset.MustNewTable(charset.Info{
		Name:        "apple2e",
		Description: "Western European (Apple IIe)",
		ReadOnly:    true,
	}, apple2eRunes)

	// GEM is the Digital Research GEM character set.
	GEM = charset.MustNewTable(charset.Info{
		Name:        "gem",
		Description: "Western European (GEM)",
		Sentinel:    utf8.RuneError,
	}, gemRunes)

	// MacFarsi is the Macintosh Farsi character set. Its upper half repeats
	// ASCII punctuation with right-to-left direction.
	MacFarsi = charset.MustNewTable(charset.Info{
		Name:            "x-mac-farsi",
		Description:     "Farsi (Mac)",
		WebName:         "x-mac-farsi",
		CodePage:        10014,
		WindowsCodePage: 10014,
		ReadOnly:        true,
		Sentinel:        utf8.RuneError,
	}, macFarsiRunes)
)

// Default holds every table of this package.
var Default = newDefault()

func newDefault() charset.Manager {
	m := charset.NewManager()
	if err := Register(m); err != nil {
		panic(err)
	}
	return m
}

// All returns the tables of this package in registration order.
func All() []*charset.Table {
	return []*charset.Table{ATASCII, Apple2e, GEM, MacFarsi}
}

// Register adds every table of this package to r.
func Register(r charset.Registry) error {
	return charset.RegisterAll(r, All()...)
}
