/*
NAME
  types.go

DESCRIPTION
  types.go declares the QUIC frame type tags (STREAM as one base tag whose
  low three bits are flags) and the Frame interface every variant
  implements.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frame implements the QUIC frame variants: their wire layout,
// encode/decode, and the handful of cross-field invariants (ACK range
// monotonicity, CRYPTO offset bounds) that must hold for a decode to
// succeed.
package frame

// Type is a QUIC frame's 1-byte type tag. STREAM occupies a contiguous
// range (0x08-0x0f) where the low three bits are flags rather than part of
// the type identity.
type Type byte

const (
	TypePadding                    Type = 0x00
	TypePing                       Type = 0x01
	TypeAck                        Type = 0x02
	TypeAckECN                     Type = 0x03
	TypeResetStream                Type = 0x04
	TypeStopSending                Type = 0x05
	TypeCrypto                     Type = 0x06
	TypeNewToken                   Type = 0x07
	TypeStream                     Type = 0x08 // 0x08-0x0f, flags in low 3 bits
	TypeMaxData                    Type = 0x10
	TypeMaxStreamData              Type = 0x11
	TypeMaxStreamsBidi             Type = 0x12
	TypeMaxStreamsUni              Type = 0x13
	TypeDataBlocked                Type = 0x14
	TypeStreamDataBlocked          Type = 0x15
	TypeStreamsBlockedBidi         Type = 0x16
	TypeStreamsBlockedUni          Type = 0x17
	TypeNewConnectionID            Type = 0x18
	TypeRetireConnectionID         Type = 0x19
	TypePathChallenge              Type = 0x1a
	TypePathResponse               Type = 0x1b
	TypeConnectionCloseTransport   Type = 0x1c
	TypeConnectionCloseApplication Type = 0x1d
	TypeHandshakeDone              Type = 0x1e
)

// Stream frame flag bits, low three bits of the type byte in [0x08, 0x0f].
const (
	StreamFlagFIN uint8 = 0x01
	StreamFlagLEN uint8 = 0x02
	StreamFlagOFF uint8 = 0x04
)

// StreamRangeLow and StreamRangeHigh bound the STREAM frame's type range.
const (
	StreamRangeLow  = Type(0x08)
	StreamRangeHigh = Type(0x0f)
)

// Direction distinguishes the bidirectional/unidirectional halves of the
// MAX_STREAMS and STREAMS_BLOCKED frame pairs, folding what the wire format
// treats as two frame types into one Go type per concept.
type Direction int

const (
	Bidirectional Direction = iota
	Unidirectional
)

// Frame is implemented by every frame type in this package. Encode and Decode
// are the only operations the codec performs — frames are never
// interpreted, only moved between bytes and Go values.
type Frame interface {
	// Type returns the frame's wire type tag.
	Type() Type
	// Encode appends this frame's wire encoding to dst and returns the
	// extended slice.
	Encode(dst []byte) []byte
}
