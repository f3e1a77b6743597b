/*
NAME
  random.go

DESCRIPTION
  random.go generates arbitrary frame instances for the round-trip property
  tests described in the codec's testable-properties section. Not used by
  production code.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import (
	"github.com/ausocean/quiche/internal/randgen"
	"github.com/ausocean/quiche/varint"
)

func randVarInt(r *randgen.Source, max uint64) varint.VarInt {
	v, _ := varint.New(r.Uint64n(max + 1))
	return v
}

// randomAckRanges builds a valid chain of (gap, length) pairs starting from
// nextSmallest, respecting the same monotonicity invariant decode enforces.
func randomAckRanges(r *randgen.Source, nextSmallest varint.VarInt, n int) []AckRange {
	ranges := make([]AckRange, 0, n)
	for i := 0; i < n; i++ {
		if nextSmallest.Uint64() < 2 {
			break
		}
		gap := randVarInt(r, nextSmallest.Uint64()-2)
		gapPlus2, _ := gap.AddN(2)
		nextSmallest, _ = nextSmallest.Sub(gapPlus2)
		length := randVarInt(r, nextSmallest.Uint64())
		ranges = append(ranges, AckRange{gap, length})
		nextSmallest, _ = nextSmallest.Sub(length)
	}
	return ranges
}

// Random returns a pseudo-random instance of one of the 22 frame types
// declared in this package, chosen uniformly, using r for all randomness.
func Random(r *randgen.Source) Frame {
	switch r.Uint8(22) {
	case 0:
		return Padding{}
	case 1:
		return Ping{}
	case 2:
		largest := randVarInt(r, 1<<20)
		first := randVarInt(r, largest.Uint64())
		nextSmallest, _ := largest.Sub(first)
		ranges := randomAckRanges(r, nextSmallest, int(r.Uint8(4)))
		return Ack{largest, randVarInt(r, 1<<16), first, ranges}
	case 3:
		largest := randVarInt(r, 1<<20)
		first := randVarInt(r, largest.Uint64())
		nextSmallest, _ := largest.Sub(first)
		ranges := randomAckRanges(r, nextSmallest, int(r.Uint8(4)))
		return AckECN{largest, randVarInt(r, 1<<16), first, ranges, randVarInt(r, 1<<10), randVarInt(r, 1<<10), randVarInt(r, 1<<10)}
	case 4:
		return ResetStream{randVarInt(r, 1<<20), randVarInt(r, 1<<16), randVarInt(r, 1<<30)}
	case 5:
		return StopSending{randVarInt(r, 1<<20), randVarInt(r, 1<<16)}
	case 6:
		data := r.Bytes(int(r.Uint8(32)))
		return Crypto{randVarInt(r, 1<<20), data}
	case 7:
		token := r.Bytes(int(r.Uint8(32)) + 1)
		return NewTokenFrame{token}
	case 8:
		off := r.Bool()
		explicitLen := r.Bool()
		data := r.Bytes(int(r.Uint8(32)))
		var offset varint.VarInt
		if off {
			offset = randVarInt(r, 1<<30)
		}
		return Stream{
			StreamID: randVarInt(r, 1<<20),
			Offset:   offset,
			Fin:      r.Bool(),
			Off:      off,
			Len:      explicitLen,
			Data:     data,
		}
	case 9:
		return MaxData{randVarInt(r, 1<<30)}
	case 10:
		return MaxStreamData{randVarInt(r, 1<<20), randVarInt(r, 1<<30)}
	case 11:
		return MaxStreams{randDirection(r), randVarInt(r, 1<<20)}
	case 12:
		return DataBlocked{randVarInt(r, 1<<30)}
	case 13:
		return StreamDataBlocked{randVarInt(r, 1<<20), randVarInt(r, 1<<30)}
	case 14:
		return StreamsBlocked{randDirection(r), randVarInt(r, 1<<20)}
	case 15:
		cidLen := int(r.Uint8(20)) + 1
		seq := randVarInt(r, 1<<20)
		retire := randVarInt(r, seq.Uint64())
		var token [16]byte
		copy(token[:], r.Bytes(16))
		return NewConnectionID{seq, retire, r.Bytes(cidLen), token}
	case 16:
		return RetireConnectionID{randVarInt(r, 1<<20)}
	case 17:
		var data [8]byte
		copy(data[:], r.Bytes(8))
		return PathChallenge{data}
	case 18:
		var data [8]byte
		copy(data[:], r.Bytes(8))
		return PathResponse{data}
	case 19:
		reason := randomASCII(r, int(r.Uint8(16)))
		return ConnectionCloseTransport{randVarInt(r, 1<<10), randVarInt(r, 28), reason}
	case 20:
		reason := randomASCII(r, int(r.Uint8(16)))
		return ConnectionCloseApplication{randVarInt(r, 1<<10), reason}
	default:
		return HandshakeDone{}
	}
}

// randomASCII builds a valid (trivially UTF-8) reason phrase so round-trip
// tests never hit the reason-phrase UTF-8 validity check by accident.
func randomASCII(r *randgen.Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Uint8(95)) + 32
	}
	return string(b)
}

func randDirection(r *randgen.Source) Direction {
	if r.Bool() {
		return Unidirectional
	}
	return Bidirectional
}
