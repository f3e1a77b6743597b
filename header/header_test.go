/*
NAME
  header_test.go

DESCRIPTION
  header_test.go exercises the round-trip law for all six header variants
  and the bit-packing/bound-check invariants from the codec's
  testable-properties section.

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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/quiche/internal/randgen"
	"github.com/ausocean/quiche/qerr"
	"github.com/ausocean/quiche/wire"
)

func roundTrip(t *testing.T, h Header) {
	t.Helper()
	encoded, err := h.Encode(nil)
	if err != nil {
		t.Fatalf("encode(%#v) failed: %v", h, err)
	}
	c := wire.NewCursor(encoded)
	got, err := Decode(c)
	if err != nil {
		t.Fatalf("decode(encode(%#v)) failed: %v", h, err)
	}
	if diff := cmp.Diff(h, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripAllVariants(t *testing.T) {
	r := randgen.New()
	for i := 0; i < 500; i++ {
		roundTrip(t, RandomInitial(r))
		roundTrip(t, RandomZeroRTT(r))
		roundTrip(t, RandomHandshake(r))
		roundTrip(t, RandomRetry(r))
		roundTrip(t, RandomVersionNegotiate(r))
		roundTrip(t, RandomShort(r))
	}
}

func TestLongHeaderFormBit(t *testing.T) {
	h := RandomInitial(randgen.New())
	encoded, err := h.Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded[0]&0x80 == 0 {
		t.Errorf("long header first byte MSB = 0, want 1")
	}
}

func TestShortHeaderFormBit(t *testing.T) {
	h := RandomShort(randgen.New())
	encoded, err := h.Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded[0]&0x80 != 0 {
		t.Errorf("short header first byte MSB = 1, want 0")
	}
}

func TestLongHeaderFixedPrefixBoundExceeded(t *testing.T) {
	h := ZeroRTTHeader{
		Version:      1,
		DestCID:      make([]byte, 21),
		SrcCID:       make([]byte, 21),
		Length:       1,
		PacketNumber: PacketNumber{Value: 0, Length: 1},
	}
	_, err := h.Encode(nil)
	if !qerr.Is(err, qerr.LengthBoundExceeded) {
		t.Fatalf("expected length-bound-exceeded, got %v", err)
	}
}

func TestShortHeaderBoundExceeded(t *testing.T) {
	h := ShortHeader{
		PacketNumberLength: 4,
		DestCID:            make([]byte, 30),
		PacketNumber:       PacketNumber{Value: 0, Length: 4},
	}
	_, err := h.Encode(nil)
	if !qerr.Is(err, qerr.LengthBoundExceeded) {
		t.Fatalf("expected length-bound-exceeded, got %v", err)
	}
}
