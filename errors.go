// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import "errors"

// Common charset errors
var (
	ErrOutOfRange        = errors.New("index out of range")
	ErrShortBuffer       = errors.New("destination buffer too small")
	ErrInvalidTable      = errors.New("invalid table")
	ErrUnknownEncoding   = errors.New("unknown encoding")
	ErrDuplicateEncoding = errors.New("duplicate encoding registration")
)

const (
	// TableSize is the number of entries in every decode table
	TableSize = 256
	// Fallback is the byte written for a rune with no mapping ('?')
	Fallback byte = 0x3F
	// CharLen is the number of runes produced per decoded byte
	CharLen = 1
	// ByteLen is the number of bytes produced per encoded rune
	ByteLen = 1
)

// Errs collects errors during a series of operations.
// It stores only the first error encountered.
type Errs struct {
	Err error
}

// Errored returns true if an error has been recorded.
func (errs *Errs) Errored() bool {
	return errs.Err != nil
}

// Add records the first non-nil error.
func (errs *Errs) Add(errors ...error) {
	if errs.Err == nil {
		for _, err := range errors {
			if err != nil {
				errs.Err = err
				break
			}
		}
	}
}
