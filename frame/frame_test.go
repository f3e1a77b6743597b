/*
NAME
  frame_test.go

DESCRIPTION
  frame_test.go exercises the round-trip law (decode(encode(x)) == x) for
  every frame type plus the ACK/CRYPTO/NEW_CONNECTION_ID validation
  invariants.

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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/quiche/internal/randgen"
	"github.com/ausocean/quiche/qerr"
	"github.com/ausocean/quiche/varint"
	"github.com/ausocean/quiche/wire"
)

func mustVarInt(v uint64) varint.VarInt {
	vi, err := varint.New(v)
	if err != nil {
		panic(err)
	}
	return vi
}

func roundTrip(t *testing.T, f Frame) {
	t.Helper()
	encoded := f.Encode(nil)
	c := wire.NewCursor(encoded)
	got, err := Decode(c)
	if err != nil {
		t.Fatalf("decode(encode(%#v)) failed: %v", f, err)
	}
	if c.Remaining() != 0 {
		t.Errorf("decode left %d unread bytes for %#v", c.Remaining(), f)
	}
	if diff := cmp.Diff(f, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPaddingPing(t *testing.T) {
	roundTrip(t, Padding{})
	roundTrip(t, Ping{})
}

func TestHandshakeDone(t *testing.T) {
	roundTrip(t, HandshakeDone{})
}

func TestPingThenHandshakeDoneInOneBuffer(t *testing.T) {
	buf := []byte{0x01, 0x1e}
	c := wire.NewCursor(buf)
	first, err := Decode(c)
	if err != nil {
		t.Fatalf("decode ping: %v", err)
	}
	if first.Type() != TypePing {
		t.Errorf("first frame type = %v, want Ping", first.Type())
	}
	second, err := Decode(c)
	if err != nil {
		t.Fatalf("decode handshake_done: %v", err)
	}
	if second.Type() != TypeHandshakeDone {
		t.Errorf("second frame type = %v, want HandshakeDone", second.Type())
	}
	if c.Remaining() != 0 {
		t.Errorf("buffer not empty after draining both frames")
	}
}

func TestAllVariantsRoundTrip(t *testing.T) {
	r := randgen.New()
	for i := 0; i < 2000; i++ {
		roundTrip(t, Random(r))
	}
}

func TestAckGapViolationFails(t *testing.T) {
	largest := mustVarInt(10)
	first := mustVarInt(2) // next_smallest = 8
	gap := mustVarInt(7)   // gap+2 = 9 > next_smallest(8)
	length := mustVarInt(0)
	f := Ack{largest, mustVarInt(0), first, []AckRange{{gap, length}}}
	encoded := f.Encode(nil)
	_, err := Decode(wire.NewCursor(encoded))
	if !qerr.Is(err, qerr.FrameEncodingError) {
		t.Fatalf("expected frame-encoding-error, got %v", err)
	}
}

func TestCryptoOverflowFails(t *testing.T) {
	// Construct bytes directly: type, offset=VarInt(Max), length=VarInt(1).
	offset := mustVarInt(varint.Max)
	length := mustVarInt(1)
	buf := []byte{byte(TypeCrypto)}
	buf = offset.Append(buf)
	buf = length.Append(buf)
	buf = append(buf, 0x00)
	_, err := Decode(wire.NewCursor(buf))
	if !qerr.Is(err, qerr.CryptoBufferExceeded) {
		t.Fatalf("expected crypto-buffer-exceeded, got %v", err)
	}
}

func TestNewConnectionIDRejectsBadCIDLen(t *testing.T) {
	seq := mustVarInt(1)
	retire := mustVarInt(0)
	buf := []byte{byte(TypeNewConnectionID)}
	buf = seq.Append(buf)
	buf = retire.Append(buf)
	buf = append(buf, 0x00) // cid_len = 0, invalid
	_, err := Decode(wire.NewCursor(buf))
	if !qerr.Is(err, qerr.FrameEncodingError) {
		t.Fatalf("expected frame-encoding-error for cid_len=0, got %v", err)
	}
}

func TestNewConnectionIDRejectsRetirePriorToBeyondSequence(t *testing.T) {
	f := NewConnectionID{
		SequenceNumber: mustVarInt(1),
		RetirePriorTo:  mustVarInt(5),
		ConnectionID:   []byte{1, 2, 3, 4},
	}
	_, err := Decode(wire.NewCursor(f.Encode(nil)))
	if !qerr.Is(err, qerr.FrameEncodingError) {
		t.Fatalf("expected frame-encoding-error, got %v", err)
	}
}
