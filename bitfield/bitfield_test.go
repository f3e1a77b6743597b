/*
NAME
  bitfield_test.go

DESCRIPTION
  bitfield_test.go covers the round-trip law between Builder and Split
  across every bit-field-width permutation the header layer relies on.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bitfield

import "testing"

// widthPermutations lists combinations of the four supported widths that
// sum to exactly 8 bits, including the long- and short-header first-byte
// layouts the header layer packs.
var widthPermutations = [][]Width{
	{Width1, Width1, Width2, Width4}, // long-header first byte
	{Width1, Width1, Width1, Width2, Width1, Width2}, // short-header first byte
	{Width1, Width7},
	{Width7, Width1},
	{Width4, Width4},
	{Width2, Width2, Width4},
	{Width2, Width2, Width2, Width2},
	{Width1, Width1, Width1, Width1, Width1, Width1, Width1, Width1},
}

// maxValue returns the largest value that fits in w bits.
func maxValue(w Width) uint8 {
	return uint8(1<<w) - 1
}

// TestBuildSplitRoundTrip pushes every combination of max-value fields for
// each width permutation through Builder, then confirms Split recovers the
// identical sequence of (width, value) pairs.
func TestBuildSplitRoundTrip(t *testing.T) {
	for _, widths := range widthPermutations {
		var bd Builder
		want := make([]BitField, len(widths))
		for i, w := range widths {
			bf, err := New(w, maxValue(w))
			if err != nil {
				t.Fatalf("New(%d, %d) failed: %v", w, maxValue(w), err)
			}
			want[i] = bf
			bd.Push(bf)
		}
		got, err := Split(bd.Byte(), widths...)
		if err != nil {
			t.Fatalf("Split(%#x, %v) failed: %v", bd.Byte(), widths, err)
		}
		if len(got) != len(want) {
			t.Fatalf("Split(%#x, %v) returned %d fields, want %d", bd.Byte(), widths, len(got), len(want))
		}
		for i := range want {
			if got[i].Width() != want[i].Width() || got[i].Value() != want[i].Value() {
				t.Errorf("field %d: got {width=%d value=%d}, want {width=%d value=%d}",
					i, got[i].Width(), got[i].Value(), want[i].Width(), want[i].Value())
			}
		}
	}
}

// TestBuildSplitEveryValue sweeps every representable value of a two-field
// byte (a 1-bit flag next to a 7-bit payload) to confirm Split recovers
// exactly what was
// pushed, not just the all-ones corner case above.
func TestBuildSplitEveryValue(t *testing.T) {
	for flag := uint8(0); flag < 2; flag++ {
		for payload := uint8(0); payload < 1<<7; payload++ {
			flagField, err := New(Width1, flag)
			if err != nil {
				t.Fatalf("New(Width1, %d) failed: %v", flag, err)
			}
			payloadField, err := New(Width7, payload)
			if err != nil {
				t.Fatalf("New(Width7, %d) failed: %v", payload, err)
			}
			var bd Builder
			bd.Push(flagField).Push(payloadField)

			fields, err := Split(bd.Byte(), Width1, Width7)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			if fields[0].Value() != flag || fields[1].Value() != payload {
				t.Errorf("flag=%d payload=%d: got flag=%d payload=%d",
					flag, payload, fields[0].Value(), fields[1].Value())
			}
		}
	}
}

func TestNewRejectsOversizedValue(t *testing.T) {
	if _, err := New(Width2, 4); err == nil {
		t.Fatalf("expected an error constructing a 2-bit field with value 4")
	}
}

func TestSplitRejectsOverflowingWidths(t *testing.T) {
	if _, err := Split(0, Width4, Width4, Width1); err == nil {
		t.Fatalf("expected an error splitting widths summing to 9 bits")
	}
}

func TestBuilderPushPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Push to panic when total pushed bits exceed 8")
		}
	}()
	var bd Builder
	full, _ := New(Width7, 0)
	one, _ := New(Width2, 0)
	bd.Push(full).Push(one)
}

// TestByteUnfilledLowBitsAreZero confirms a partially filled Builder leaves
// the remaining low bits zero, matching the documented contract.
func TestByteUnfilledLowBitsAreZero(t *testing.T) {
	var bd Builder
	f, _ := New(Width4, 0xf)
	bd.Push(f)
	if got, want := bd.Byte(), byte(0xf0); got != want {
		t.Errorf("Byte() = %#x, want %#x", got, want)
	}
}
