/*
NAME
  random.go

DESCRIPTION
  random.go generates arbitrary header instances for the round-trip
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

package header

import (
	"github.com/ausocean/quiche/internal/randgen"
	"github.com/ausocean/quiche/varint"
)

func randCID(r *randgen.Source, maxLen int) []byte {
	n := int(r.Uint8(maxLen + 1))
	return r.Bytes(n)
}

func randPacketNumber(r *randgen.Source) PacketNumber {
	length := int(r.Uint8(4)) + 1
	var max uint64
	if length == 4 {
		max = 1<<32 - 1
	} else {
		max = 1<<(uint(length)*8) - 1
	}
	value := uint32(r.Uint64n(max + 1))
	pn, _ := NewPacketNumber(value, length)
	return pn
}

// RandomInitial returns a pseudo-random InitialHeader.
func RandomInitial(r *randgen.Source) InitialHeader {
	pn := randPacketNumber(r)
	payload := int(r.Uint8(64))
	length, _ := varint.New(uint64(payload) + uint64(pn.Length))
	return InitialHeader{
		Version:      uint32(r.Uint64n(1 << 32)),
		DestCID:      randCID(r, 20),
		SrcCID:       randCID(r, 20),
		Token:        r.Bytes(int(r.Uint8(32))),
		Length:       length,
		PacketNumber: pn,
	}
}

// RandomZeroRTT returns a pseudo-random ZeroRTTHeader.
func RandomZeroRTT(r *randgen.Source) ZeroRTTHeader {
	pn := randPacketNumber(r)
	payload := int(r.Uint8(64))
	length, _ := varint.New(uint64(payload) + uint64(pn.Length))
	return ZeroRTTHeader{
		Version:      uint32(r.Uint64n(1 << 32)),
		DestCID:      randCID(r, 20),
		SrcCID:       randCID(r, 20),
		Length:       length,
		PacketNumber: pn,
	}
}

// RandomHandshake returns a pseudo-random HandshakeHeader.
func RandomHandshake(r *randgen.Source) HandshakeHeader {
	pn := randPacketNumber(r)
	payload := int(r.Uint8(64))
	length, _ := varint.New(uint64(payload) + uint64(pn.Length))
	return HandshakeHeader{
		Version:      uint32(r.Uint64n(1 << 32)),
		DestCID:      randCID(r, 20),
		SrcCID:       randCID(r, 20),
		Length:       length,
		PacketNumber: pn,
	}
}

// RandomRetry returns a pseudo-random RetryHeader.
func RandomRetry(r *randgen.Source) RetryHeader {
	var tag [16]byte
	copy(tag[:], r.Bytes(16))
	return RetryHeader{
		Version:           uint32(r.Uint64n(1 << 32)),
		DestCID:           randCID(r, 20),
		SrcCID:            randCID(r, 20),
		RetryToken:        r.Bytes(int(r.Uint8(32))),
		RetryIntegrityTag: tag,
	}
}

// RandomVersionNegotiate returns a pseudo-random VersionNegotiateHeader.
func RandomVersionNegotiate(r *randgen.Source) VersionNegotiateHeader {
	n := int(r.Uint8(4))
	versions := make([]uint32, n)
	for i := range versions {
		versions[i] = uint32(r.Uint64n(1 << 32))
	}
	return VersionNegotiateHeader{
		DestCID:           randCID(r, 20),
		SrcCID:            randCID(r, 20),
		SupportedVersions: versions,
	}
}

// RandomShort returns a pseudo-random ShortHeader.
func RandomShort(r *randgen.Source) ShortHeader {
	pn := randPacketNumber(r)
	return ShortHeader{
		SpinBit:            r.Bool(),
		KeyPhase:           r.Bool(),
		PacketNumberLength: pn.Length,
		DestCID:            randCID(r, 20),
		PacketNumber:       pn,
	}
}

// Random returns a pseudo-random instance of one of the six header
// variants, chosen uniformly.
func Random(r *randgen.Source) Header {
	switch r.Uint8(6) {
	case 0:
		return RandomInitial(r)
	case 1:
		return RandomZeroRTT(r)
	case 2:
		return RandomHandshake(r)
	case 3:
		return RandomRetry(r)
	case 4:
		return RandomVersionNegotiate(r)
	default:
		return RandomShort(r)
	}
}
