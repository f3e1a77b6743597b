/*
NAME
  varint_test.go

DESCRIPTION
  varint_test.go covers the literal encode/decode scenarios and the
  minimal-length encoding property from the codec's testable-properties
  section.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package varint

import (
	"bytes"
	"testing"

	"github.com/ausocean/quiche/qerr"
	"github.com/ausocean/quiche/wire"
)

func mustNew(t *testing.T, v uint64) VarInt {
	t.Helper()
	vi, err := New(v)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", v, err)
	}
	return vi
}

// TestEncodeLiteralScenarios covers the boundary between each encoded
// length: 63 fits in 1 byte, 64 needs 2; 16383 fits in 2 bytes, 16384
// needs 4.
func TestEncodeLiteralScenarios(t *testing.T) {
	cases := []struct {
		value uint64
		want  []byte
	}{
		{63, []byte{0x3f}},
		{64, []byte{0x40, 0x40}},
		{16383, []byte{0x7f, 0xff}},
		{16384, []byte{0x80, 0x00, 0x40, 0x00}},
	}
	for _, c := range cases {
		got := mustNew(t, c.value).Encode()
		if !bytes.Equal(got, c.want) {
			t.Errorf("VarInt(%d).Encode() = %x, want %x", c.value, got, c.want)
		}
	}
}

func TestDecodeLiteralScenarios(t *testing.T) {
	cases := []struct {
		buf  []byte
		want uint64
	}{
		{[]byte{0x3f}, 63},
		{[]byte{0x40, 0x40}, 64},
		{[]byte{0x7f, 0xff}, 16383},
		{[]byte{0x80, 0x00, 0x40, 0x00}, 16384},
	}
	for _, c := range cases {
		got, err := Decode(wire.NewCursor(c.buf))
		if err != nil {
			t.Fatalf("Decode(%x) failed: %v", c.buf, err)
		}
		if got.Uint64() != c.want {
			t.Errorf("Decode(%x) = %d, want %d", c.buf, got.Uint64(), c.want)
		}
	}
}

// TestRoundTripMinimalEncoding sweeps every encoded-length boundary and
// confirms the decoded value round-trips and Size() reports the minimal
// length actually written.
func TestRoundTripMinimalEncoding(t *testing.T) {
	boundaries := []struct {
		value    uint64
		wantSize int
	}{
		{0, 1},
		{len1 - 1, 1},
		{len1, 2},
		{len2 - 1, 2},
		{len2, 4},
		{len4 - 1, 4},
		{len4, 8},
		{Max, 8},
	}
	for _, b := range boundaries {
		vi := mustNew(t, b.value)
		if got := vi.Size(); got != b.wantSize {
			t.Errorf("VarInt(%d).Size() = %d, want %d", b.value, got, b.wantSize)
		}
		encoded := vi.Encode()
		if len(encoded) != b.wantSize {
			t.Errorf("VarInt(%d).Encode() length = %d, want %d", b.value, len(encoded), b.wantSize)
		}
		got, err := Decode(wire.NewCursor(encoded))
		if err != nil {
			t.Fatalf("Decode(%x) failed: %v", encoded, err)
		}
		if got.Uint64() != b.value {
			t.Errorf("round trip of %d got %d", b.value, got.Uint64())
		}
	}
}

func TestNewRejectsAboveMax(t *testing.T) {
	_, err := New(Max + 1)
	if !qerr.Is(err, qerr.ValueExceedsMaximum) {
		t.Fatalf("expected value-exceeds-maximum, got %v", err)
	}
}

func TestDecodeEmptyCursorYieldsZero(t *testing.T) {
	got, err := Decode(wire.NewCursor(nil))
	if err != nil {
		t.Fatalf("Decode(empty) failed: %v", err)
	}
	if got.Uint64() != 0 {
		t.Errorf("Decode(empty) = %d, want 0", got.Uint64())
	}
}

func TestDecodeTruncatedFails(t *testing.T) {
	// Prefix 0x02 declares a 4-byte encoding but the buffer holds only the
	// prefix byte.
	_, err := Decode(wire.NewCursor([]byte{0x80}))
	if !qerr.Is(err, qerr.Truncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
}

func TestAddOverflowFails(t *testing.T) {
	v := mustNew(t, Max)
	_, err := v.Add(mustNew(t, 1))
	if !qerr.Is(err, qerr.ValueExceedsMaximum) {
		t.Fatalf("expected value-exceeds-maximum, got %v", err)
	}
}

func TestSubUnderflowFails(t *testing.T) {
	v := mustNew(t, 1)
	_, err := v.Sub(mustNew(t, 2))
	if !qerr.Is(err, qerr.FrameEncodingError) {
		t.Fatalf("expected frame-encoding-error, got %v", err)
	}
}
