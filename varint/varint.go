/*
NAME
  varint.go

DESCRIPTION
  varint.go implements the QUIC variable-length integer: a self-describing
  1/2/4/8-byte unsigned integer in [0, 2^62-1], per RFC 9000 §16.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package varint implements the QUIC variable-length integer primitive that
// every multi-byte field in this codec is built from.
package varint

import (
	"github.com/pkg/errors"

	"github.com/ausocean/quiche/qerr"
	"github.com/ausocean/quiche/wire"
)

// Max is the largest value a VarInt can hold: 2^62 - 1.
const Max uint64 = (1 << 62) - 1

const (
	len1 uint64 = 1 << 6  // values < this fit in 1 byte
	len2 uint64 = 1 << 14 // values < this fit in 2 bytes
	len4 uint64 = 1 << 30 // values < this fit in 4 bytes
)

// VarInt is a QUIC variable-length integer.
type VarInt uint64

// New constructs a VarInt, rejecting values above Max.
func New(value uint64) (VarInt, error) {
	if value > Max {
		return 0, qerr.New(qerr.ValueExceedsMaximum, "varint value exceeds 2^62-1")
	}
	return VarInt(value), nil
}

// Size returns the smallest encoded length (1, 2, 4, or 8) that holds v.
func (v VarInt) Size() int {
	switch {
	case uint64(v) < len1:
		return 1
	case uint64(v) < len2:
		return 2
	case uint64(v) < len4:
		return 4
	default:
		return 8
	}
}

// prefixForSize maps an encoded length to its 2-bit wire prefix.
func prefixForSize(size int) byte {
	switch size {
	case 1:
		return 0x00
	case 2:
		return 0x01
	case 4:
		return 0x02
	default:
		return 0x03
	}
}

// Encode returns the minimal-length wire encoding of v.
func (v VarInt) Encode() []byte {
	size := v.Size()
	buf := make([]byte, size)
	val := uint64(v)
	for i := size - 1; i >= 0; i-- {
		buf[i] = byte(val)
		val >>= 8
	}
	buf[0] |= prefixForSize(size) << 6
	return buf
}

// Append appends the minimal-length wire encoding of v to dst, returning the
// extended slice — the append-style idiom used throughout this codec to
// avoid an allocation per field.
func (v VarInt) Append(dst []byte) []byte {
	return append(dst, v.Encode()...)
}

// Decode consumes a VarInt from the front of c. Decoding a cursor with no
// remaining bytes yields VarInt(0) rather than failing, to support optional
// trailing fields that are absent at the end of a buffer.
func Decode(c *wire.Cursor) (VarInt, error) {
	if c.Remaining() == 0 {
		return 0, nil
	}
	first, err := c.PeekByte()
	if err != nil {
		return 0, errors.Wrap(err, "varint: peek prefix byte")
	}
	size := 1 << (first >> 6) // prefix 0,1,2,3 -> size 1,2,4,8
	raw, err := c.ReadN(size)
	if err != nil {
		return 0, qerr.New(qerr.Truncated, "varint: need more bytes than remain")
	}
	var val uint64
	for i, b := range raw {
		if i == 0 {
			b &^= 0xc0 // mask off the 2-bit length prefix
		}
		val = val<<8 | uint64(b)
	}
	return VarInt(val), nil
}

// Add returns v+other, failing with ValueExceedsMaximum on overflow past Max.
func (v VarInt) Add(other VarInt) (VarInt, error) {
	return New(uint64(v) + uint64(other))
}

// AddN returns v+n, failing with ValueExceedsMaximum on overflow past Max.
func (v VarInt) AddN(n uint8) (VarInt, error) {
	return New(uint64(v) + uint64(n))
}

// Sub returns v-other, failing with FrameEncodingError if the result would
// be negative (VarInt has no sign).
func (v VarInt) Sub(other VarInt) (VarInt, error) {
	if other > v {
		return 0, qerr.New(qerr.FrameEncodingError, "varint subtraction underflow")
	}
	return v - other, nil
}

// Uint64 returns the underlying value.
func (v VarInt) Uint64() uint64 {
	return uint64(v)
}
