/*
NAME
  random.go

DESCRIPTION
  random.go generates arbitrary packet instances for the round-trip
  property tests described in the codec's testable-properties section. Not
  used by production code.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package packet

import (
	"github.com/ausocean/quiche/frame"
	"github.com/ausocean/quiche/header"
	"github.com/ausocean/quiche/internal/randgen"
)

// randFrames generates n frames, forcing any non-final STREAM frame to
// carry an explicit length: a STREAM frame without one consumes the rest
// of the packet (RFC 9000 §19.8), so it may only appear last.
func randFrames(r *randgen.Source, n int) []frame.Frame {
	frames := make([]frame.Frame, n)
	for i := range frames {
		frames[i] = frame.Random(r)
		if i < n-1 {
			if s, ok := frames[i].(frame.Stream); ok && !s.Len {
				s.Len = true
				frames[i] = s
			}
		}
	}
	return frames
}

// Random returns a pseudo-random Packet pairing one of the six header
// variants with a compatible frame payload (none, for Retry and
// Version-Negotiate).
func Random(r *randgen.Source) Packet {
	var h header.Header
	switch r.Uint8(6) {
	case 0:
		h = header.RandomInitial(r)
	case 1:
		h = header.RandomZeroRTT(r)
	case 2:
		h = header.RandomHandshake(r)
	case 3:
		p, _ := New(header.RandomRetry(r), nil)
		return p
	case 4:
		p, _ := New(header.RandomVersionNegotiate(r), nil)
		return p
	default:
		h = header.RandomShort(r)
	}
	n := int(r.Uint8(6))
	p, err := New(h, randFrames(r, n))
	if err != nil {
		// New only fails on a Length VarInt overflow, unreachable with the
		// small frame counts generated here.
		panic(err)
	}
	return p
}
