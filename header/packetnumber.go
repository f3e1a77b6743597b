/*
NAME
  packetnumber.go

DESCRIPTION
  packetnumber.go implements PacketNumber, the codec's 1-4-byte big-endian
  packet-number representation — never a VarInt wrapper.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package header

import (
	"github.com/ausocean/quiche/qerr"
	"github.com/ausocean/quiche/wire"
)

// PacketNumber is an opaque 1-4 byte big-endian integer. Full-range
// truncation/reconstruction against a largest-acknowledged packet number is
// a connection-layer concern this codec does not perform.
type PacketNumber struct {
	Value  uint32
	Length int // 1, 2, 3, or 4
}

// NewPacketNumber constructs a PacketNumber, rejecting a length outside
// [1,4] or a value that doesn't fit in that many bytes.
func NewPacketNumber(value uint32, length int) (PacketNumber, error) {
	if length < 1 || length > 4 {
		return PacketNumber{}, qerr.New(qerr.FrameEncodingError, "packet number length must be in [1,4]")
	}
	if length < 4 && value >= 1<<(uint(length)*8) {
		return PacketNumber{}, qerr.New(qerr.FrameEncodingError, "packet number value does not fit in declared length")
	}
	return PacketNumber{Value: value, Length: length}, nil
}

// Encode appends the big-endian packet-number bytes to dst.
func (p PacketNumber) Encode(dst []byte) []byte {
	for i := p.Length - 1; i >= 0; i-- {
		dst = append(dst, byte(p.Value>>uint(8*i)))
	}
	return dst
}

// DecodePacketNumber reads exactly length bytes from c as a big-endian
// packet number.
func DecodePacketNumber(c *wire.Cursor, length int) (PacketNumber, error) {
	raw, err := c.ReadN(length)
	if err != nil {
		return PacketNumber{}, qerr.New(qerr.Truncated, "packet_number")
	}
	var v uint32
	for _, b := range raw {
		v = v<<8 | uint32(b)
	}
	return PacketNumber{Value: v, Length: length}, nil
}
