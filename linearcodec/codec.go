// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package linearcodec lays struct fields out back to back as a fixed-width
// legacy record, such as a disk directory entry. Integers are little-endian.
// Strings are text fields converted through a charset.Codec; their width
// comes from the `charset` struct tag, e.g. `charset:"8"`.
package linearcodec

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/luxfi/charset"
)

// TagName is the struct tag holding the width of a string field.
const TagName = "charset"

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrUnexportedField = errors.New("unexported field")
	ErrMissingWidth    = errors.New("string field has no width")
	ErrMarshalNil      = errors.New("can't marshal nil pointer")
	ErrUnmarshalNil    = errors.New("can't unmarshal into nil")
)

// Codec is a linear codec for legacy records
type Codec struct {
	charset *charset.Codec
	pad     byte
	padRune rune
}

// New returns a codec whose text fields are padded with the byte c encodes
// a space as.
func New(c *charset.Codec) *Codec {
	return NewWithPad(c, c.EncodeRune(' '))
}

// NewWithPad returns a codec whose text fields are padded with pad. Every
// trailing rune that pad decodes to is removed when unmarshalling, so a value
// ending in that rune does not round-trip.
func NewWithPad(c *charset.Codec, pad byte) *Codec {
	return &Codec{
		charset: c,
		pad:     pad,
		padRune: c.Table().Decode(pad),
	}
}

// Marshal returns the record bytes of val
func (c *Codec) Marshal(val interface{}) ([]byte, error) {
	size, err := c.Size(val)
	if err != nil {
		return nil, err
	}
	p := charset.NewPacker(c.charset, size)
	if err := c.MarshalInto(val, p); err != nil {
		return nil, err
	}
	return p.Bytes[:p.Offset], nil
}

// Unmarshal reads the record in b into dest, which must be a pointer
func (c *Codec) Unmarshal(b []byte, dest interface{}) error {
	return c.UnmarshalFrom(charset.PackerFromBytes(c.charset, b), dest)
}

// MarshalInto marshals the value into the packer
func (c *Codec) MarshalInto(val interface{}, p *charset.Packer) error {
	return c.marshal(reflect.ValueOf(val), -1, p)
}

// UnmarshalFrom unmarshals from the packer into the value
func (c *Codec) UnmarshalFrom(p *charset.Packer, val interface{}) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrUnmarshalNil
	}
	return c.unmarshal(p, rv.Elem(), -1)
}

// Size returns the record size of the value
func (c *Codec) Size(val interface{}) (int, error) {
	return c.size(reflect.ValueOf(val), -1)
}

// fieldWidth returns the width tagged on f, or -1 when there is none.
func fieldWidth(f reflect.StructField) (int, error) {
	tag, ok := f.Tag.Lookup(TagName)
	if !ok {
		return -1, nil
	}
	width, err := strconv.Atoi(tag)
	if err != nil || width < 0 {
		return 0, fmt.Errorf("%w: field %s has width tag %q", ErrMissingWidth, f.Name, tag)
	}
	return width, nil
}

func (c *Codec) marshal(rv reflect.Value, width int, p *charset.Packer) error {
	if p.Errored() {
		return p.Err
	}

	switch rv.Kind() {
	case reflect.Bool:
		p.PackBool(rv.Bool())
	case reflect.Uint8:
		p.PackByte(byte(rv.Uint()))
	case reflect.Uint16:
		p.PackShort(uint16(rv.Uint()))
	case reflect.Uint32:
		p.PackInt(uint32(rv.Uint()))
	case reflect.Int8:
		p.PackByte(byte(rv.Int()))
	case reflect.Int16:
		p.PackShort(uint16(rv.Int()))
	case reflect.Int32:
		p.PackInt(uint32(rv.Int()))
	case reflect.String:
		if width < 0 {
			return ErrMissingWidth
		}
		p.PackText(rv.String(), width, c.pad)
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := c.marshal(rv.Index(i), width, p); err != nil {
				return err
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				return fmt.Errorf("%w: %s.%s", ErrUnexportedField, t, f.Name)
			}
			w, err := fieldWidth(f)
			if err != nil {
				return err
			}
			if err := c.marshal(rv.Field(i), w, p); err != nil {
				return err
			}
		}
	case reflect.Ptr:
		if rv.IsNil() {
			return ErrMarshalNil
		}
		return c.marshal(rv.Elem(), width, p)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedType, rv.Kind())
	}
	return p.Err
}

func (c *Codec) unmarshal(p *charset.Packer, rv reflect.Value, width int) error {
	if p.Errored() {
		return p.Err
	}

	switch rv.Kind() {
	case reflect.Bool:
		rv.SetBool(p.UnpackBool())
	case reflect.Uint8:
		rv.SetUint(uint64(p.UnpackByte()))
	case reflect.Uint16:
		rv.SetUint(uint64(p.UnpackShort()))
	case reflect.Uint32:
		rv.SetUint(uint64(p.UnpackInt()))
	case reflect.Int8:
		rv.SetInt(int64(int8(p.UnpackByte())))
	case reflect.Int16:
		rv.SetInt(int64(int16(p.UnpackShort())))
	case reflect.Int32:
		rv.SetInt(int64(int32(p.UnpackInt())))
	case reflect.String:
		if width < 0 {
			return ErrMissingWidth
		}
		rv.SetString(strings.TrimRight(p.UnpackText(width), string(c.padRune)))
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := c.unmarshal(p, rv.Index(i), width); err != nil {
				return err
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				return fmt.Errorf("%w: %s.%s", ErrUnexportedField, t, f.Name)
			}
			w, err := fieldWidth(f)
			if err != nil {
				return err
			}
			if err := c.unmarshal(p, rv.Field(i), w); err != nil {
				return err
			}
		}
	case reflect.Ptr:
		elem := reflect.New(rv.Type().Elem())
		if err := c.unmarshal(p, elem.Elem(), width); err != nil {
			return err
		}
		rv.Set(elem)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedType, rv.Kind())
	}
	return p.Err
}

func (c *Codec) size(rv reflect.Value, width int) (int, error) {
	switch rv.Kind() {
	case reflect.Bool, reflect.Uint8, reflect.Int8:
		return 1, nil
	case reflect.Uint16, reflect.Int16:
		return 2, nil
	case reflect.Uint32, reflect.Int32:
		return 4, nil
	case reflect.String:
		if width < 0 {
			return 0, ErrMissingWidth
		}
		return width, nil
	case reflect.Array:
		size := 0
		for i := 0; i < rv.Len(); i++ {
			s, err := c.size(rv.Index(i), width)
			if err != nil {
				return 0, err
			}
			size += s
		}
		return size, nil
	case reflect.Struct:
		t := rv.Type()
		size := 0
		for i := 0; i < rv.NumField(); i++ {
			w, err := fieldWidth(t.Field(i))
			if err != nil {
				return 0, err
			}
			s, err := c.size(rv.Field(i), w)
			if err != nil {
				return 0, err
			}
			size += s
		}
		return size, nil
	case reflect.Ptr:
		if rv.IsNil() {
			return 0, ErrMarshalNil
		}
		return c.size(rv.Elem(), width)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedType, rv.Kind())
	}
}
