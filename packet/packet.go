/*
NAME
  packet.go

DESCRIPTION
  packet.go composes a Header and its payload frame list into a Packet,
  encoding/decoding both in one pass over a shared cursor.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package packet composes the header and frame layers into a complete QUIC
// packet: header first, then the ordered list of payload frames.
package packet

import (
	"github.com/pkg/errors"

	"github.com/ausocean/quiche/frame"
	"github.com/ausocean/quiche/header"
	"github.com/ausocean/quiche/varint"
	"github.com/ausocean/quiche/wire"
)

// Packet is header + an ordered payload frame list. Retry and
// Version-Negotiate headers carry no frames; every other header variant
// may carry zero or more.
type Packet struct {
	Header header.Header
	Frames []frame.Frame
}

// carriesLength reports whether h has a Length field whose value must
// track the encoded size of the packet number plus the frame payload
// (Initial, 0-RTT, Handshake).
func carriesLength(h header.Header) bool {
	switch h.(type) {
	case header.InitialHeader, header.ZeroRTTHeader, header.HandshakeHeader:
		return true
	default:
		return false
	}
}

// carriesFrames reports whether h is followed by a frame payload at all.
// Retry and Version-Negotiate consume the rest of the datagram themselves.
func carriesFrames(h header.Header) bool {
	switch h.(type) {
	case header.RetryHeader, header.VersionNegotiateHeader:
		return false
	default:
		return true
	}
}

func pnLength(h header.Header) int {
	switch v := h.(type) {
	case header.InitialHeader:
		return v.PacketNumber.Length
	case header.ZeroRTTHeader:
		return v.PacketNumber.Length
	case header.HandshakeHeader:
		return v.PacketNumber.Length
	default:
		return 0
	}
}

func withLength(h header.Header, length varint.VarInt) header.Header {
	switch v := h.(type) {
	case header.InitialHeader:
		v.Length = length
		return v
	case header.ZeroRTTHeader:
		v.Length = length
		return v
	case header.HandshakeHeader:
		v.Length = length
		return v
	default:
		return h
	}
}

func encodedFrameLen(frames []frame.Frame) int {
	var buf []byte
	for _, f := range frames {
		buf = f.Encode(buf)
	}
	return len(buf)
}

// New builds a Packet from h and frames, recomputing h's Length field (for
// the header variants that carry one) so it matches the encoded size of
// the packet number plus frames — callers never need to track that
// bookkeeping by hand.
func New(h header.Header, frames []frame.Frame) (Packet, error) {
	if !carriesFrames(h) && len(frames) > 0 {
		return Packet{}, errors.New("packet: header variant carries no frame payload")
	}
	if carriesLength(h) {
		total := uint64(pnLength(h) + encodedFrameLen(frames))
		length, err := varint.New(total)
		if err != nil {
			return Packet{}, err
		}
		h = withLength(h, length)
	}
	return Packet{Header: h, Frames: frames}, nil
}

// Encode appends the packet's wire encoding to dst: header first, then
// each frame in order.
func (p Packet) Encode(dst []byte) ([]byte, error) {
	dst, err := p.Header.Encode(dst)
	if err != nil {
		return nil, errors.Wrap(err, "packet: encode header")
	}
	for _, f := range p.Frames {
		dst = f.Encode(dst)
	}
	return dst, nil
}

// Decode reads one packet from buf in full. The short-vs-long discriminant
// and long-header sub-form dispatch both happen inside header.Decode; once
// the header is consumed, whatever remains in the cursor is drained as a
// sequence of frames. An unparseable trailing fragment fails with the
// frame layer's error for it: frame-encoding-error for an unknown type or
// invalid field, truncated for a field cut off by the end of the buffer.
func Decode(buf []byte) (Packet, error) {
	c := wire.NewCursor(buf)
	h, err := header.Decode(c)
	if err != nil {
		return Packet{}, errors.Wrap(err, "packet: decode header")
	}
	if !carriesFrames(h) {
		return Packet{Header: h}, nil
	}
	var frames []frame.Frame
	for c.Remaining() > 0 {
		f, err := frame.Decode(c)
		if err != nil {
			return Packet{}, errors.Wrap(err, "packet: decode frame")
		}
		frames = append(frames, f)
	}
	return Packet{Header: h, Frames: frames}, nil
}
