/*
NAME
  bitfield.go

DESCRIPTION
  bitfield.go provides fixed-width bit slices (1, 2, 4, 7 bits) packed
  MSB-first into a byte, used exclusively by the header codec to build and
  tear down QUIC's bit-packed first bytes.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitfield provides fixed-width bit slices packed MSB-first into a
// byte.
//
// The packing convention is fixed here once and for all: when several
// bit-fields share a byte, they are concatenated MSB-first in declaration
// order, and the assembled byte is written to the wire as-is. This is the
// one true convention for this codec — no ad hoc bit.reverse_bits or
// per-field inversion anywhere in the header layer.
package bitfield

import "github.com/ausocean/quiche/qerr"

// Width is a supported bit-field width.
type Width uint8

// Supported widths — the only ones QUIC's header layer needs.
const (
	Width1 Width = 1
	Width2 Width = 2
	Width4 Width = 4
	Width7 Width = 7
)

// BitField is a value occupying exactly Width bits.
type BitField struct {
	width Width
	value uint8
}

// New constructs a BitField of the given width, rejecting a value that
// doesn't fit in that width.
func New(width Width, value uint8) (BitField, error) {
	if value >= 1<<width {
		return BitField{}, qerr.New(qerr.FrameEncodingError, "bitfield value does not fit in declared width")
	}
	return BitField{width: width, value: value}, nil
}

// Value returns the underlying value.
func (b BitField) Value() uint8 {
	return b.value
}

// Width returns the field's bit width.
func (b BitField) Width() Width {
	return b.width
}

// Builder assembles a sequence of bit-fields, MSB-first in the order they
// are pushed, into a single byte.
type Builder struct {
	value uint8
	bits  int
}

// Push appends a bit-field to the builder. Pushing more than 8 bits total
// across all fields is a programmer error and panics, mirroring the
// header-layer invariant that a byte's fields are declared to sum to 8.
func (bd *Builder) Push(b BitField) *Builder {
	bd.bits += int(b.width)
	if bd.bits > 8 {
		panic("bitfield: pushed more than 8 bits into a single byte")
	}
	bd.value = bd.value<<uint(b.width) | b.value
	return bd
}

// Byte returns the assembled byte. If fewer than 8 bits were pushed, the
// remaining low bits are zero.
func (bd *Builder) Byte() byte {
	return bd.value << uint(8-bd.bits)
}

// Split decomposes a byte into bit-fields of the given widths, MSB-first,
// in the same order Builder.Push would have assembled them. The widths must
// sum to 8 or less.
func Split(b byte, widths ...Width) ([]BitField, error) {
	total := 0
	for _, w := range widths {
		total += int(w)
	}
	if total > 8 {
		return nil, qerr.New(qerr.FrameEncodingError, "bitfield: widths sum to more than 8 bits")
	}
	fields := make([]BitField, 0, len(widths))
	shift := 8
	for _, w := range widths {
		shift -= int(w)
		mask := uint8(1<<w) - 1
		value := (b >> uint(shift)) & mask
		field, err := New(w, value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}
