/*
NAME
  packet_test.go

DESCRIPTION
  packet_test.go exercises the round-trip law for full packets across all
  six header variants, plus the two literal packet scenarios from the
  codec's testable-properties section.

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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/quiche/frame"
	"github.com/ausocean/quiche/header"
	"github.com/ausocean/quiche/internal/randgen"
)

func roundTrip(t *testing.T, p Packet) {
	t.Helper()
	encoded, err := p.Encode(nil)
	if err != nil {
		t.Fatalf("encode(%#v) failed: %v", p, err)
	}
	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("decode(encode(%#v)) failed: %v", p, err)
	}
	if diff := cmp.Diff(p, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRandomPacketsRoundTrip(t *testing.T) {
	r := randgen.New()
	for i := 0; i < 1000; i++ {
		roundTrip(t, Random(r))
	}
}

// TestInitialPacketScenario mirrors the codec's literal Initial-packet
// scenario: version 1, empty token, 8-byte zero CIDs, a single CRYPTO
// frame at offset 2 carrying 10 bytes of data.
func TestInitialPacketScenario(t *testing.T) {
	pn, err := header.NewPacketNumber(8, 1)
	if err != nil {
		t.Fatalf("NewPacketNumber: %v", err)
	}
	h := header.InitialHeader{
		Version:      1,
		DestCID:      make([]byte, 8),
		SrcCID:       make([]byte, 8),
		Token:        nil,
		PacketNumber: pn,
	}
	data := []byte{0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00}
	frames := []frame.Frame{frame.Crypto{Offset: 2, Data: data}}
	p, err := New(h, frames)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	roundTrip(t, p)
}

// TestShortPacketScenario mirrors the codec's literal Short-packet
// scenario: spin 0, key_phase 1, pn_len 3 (4 PN bytes), 8-byte zero CID,
// pn = [0,1,0,1], payload = Ping followed by three Padding frames.
func TestShortPacketScenario(t *testing.T) {
	pn, err := header.NewPacketNumber(0x00010001, 4)
	if err != nil {
		t.Fatalf("NewPacketNumber: %v", err)
	}
	h := header.ShortHeader{
		SpinBit:            false,
		KeyPhase:           true,
		PacketNumberLength: 4,
		DestCID:            make([]byte, 8),
		PacketNumber:       pn,
	}
	frames := []frame.Frame{frame.Ping{}, frame.Padding{}, frame.Padding{}, frame.Padding{}}
	p, err := New(h, frames)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	roundTrip(t, p)
}

func TestRetryHeaderCarriesNoFrames(t *testing.T) {
	retry := header.RandomRetry(randgen.New())
	_, err := New(retry, []frame.Frame{frame.Ping{}})
	if err == nil {
		t.Fatalf("expected an error attaching frames to a Retry packet")
	}
}
