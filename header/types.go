/*
NAME
  types.go

DESCRIPTION
  types.go declares the tagged set of QUIC header variants, the long-packet
  type enum, and the connection-ID and packet-number helper types shared by
  every variant.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package header implements the QUIC long- and short-header wire formats:
// bit-packed first byte, length-prefixed connection IDs, and the five
// type-specific long-header extensions (Initial, 0-RTT, Handshake, Retry,
// Version-Negotiate).
package header

// LongPacketType is the 2-bit long-packet-type field of a long header's
// first byte.
type LongPacketType uint8

const (
	Initial   LongPacketType = 0
	ZeroRTT   LongPacketType = 1
	Handshake LongPacketType = 2
	Retry     LongPacketType = 3
)

func (t LongPacketType) String() string {
	switch t {
	case Initial:
		return "initial"
	case ZeroRTT:
		return "0-rtt"
	case Handshake:
		return "handshake"
	case Retry:
		return "retry"
	default:
		return "unknown-long-packet-type"
	}
}

// maxFixedPrefixLen is a defensive (not RFC-mandated) bound on the portion
// of a long header before its type-specific extension: first byte + 4-byte
// version + the two length-prefixed connection IDs. Tight only when both
// CIDs are the maximum 20 bytes: 1 + 4 + (1+20) + (1+20) = 47.
const maxFixedPrefixLen = 47

// maxShortHeaderLen bounds the entire short header.
const maxShortHeaderLen = 33

// Header is the closed set of QUIC header variants. Like Frame, it is
// represented as a Go interface rather than a single struct with a
// discriminant field — the idiomatic stand-in for a tagged union.
type Header interface {
	// IsLong reports whether this header uses the long-header wire form.
	IsLong() bool
	// Encode appends the header's wire encoding to dst, returning the
	// extended slice, or fails with length-bound-exceeded.
	Encode(dst []byte) ([]byte, error)
}

// encodeCID appends a 1-byte length prefix followed by cid's bytes. The
// codec tolerates any length 0-255; only a peer receiving 0 or >20 on a
// live connection would treat that as an error, which is outside this
// codec's concern.
func encodeCID(dst []byte, cid []byte) []byte {
	dst = append(dst, byte(len(cid)))
	return append(dst, cid...)
}

func decodeCIDLen(lenByte byte) int {
	return int(lenByte)
}
