/*
NAME
  cursor.go

DESCRIPTION
  cursor.go provides a minimal byte-slice cursor used by the decoding codec
  layers (varint, frame, header, packet) to decode without repeatedly
  reslicing or draining the front of a buffer.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wire provides a shared decode cursor over a byte slice.
//
// Decoders that drain from the front of a []byte cost O(n) per drain, which
// makes a multi-field decode O(length^2). Cursor instead tracks an offset
// into a fixed backing slice, so decoding the whole buffer costs
// O(total length).
package wire

import "github.com/pkg/errors"

// ErrTruncated is returned by any read that would run past the end of the
// cursor's buffer.
var ErrTruncated = errors.New("truncated: buffer ended mid-field")

// Cursor is a read-only position into a byte slice.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a Cursor reading from the front of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Rest returns the unread tail of the buffer without advancing the cursor.
func (c *Cursor) Rest() []byte {
	return c.buf[c.off:]
}

// ReadByte reads and consumes a single byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, ErrTruncated
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (c *Cursor) PeekByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, ErrTruncated
	}
	return c.buf[c.off], nil
}

// ReadN consumes and returns the next n bytes.
func (c *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, ErrTruncated
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Advance skips n bytes without returning them.
func (c *Cursor) Advance(n int) error {
	_, err := c.ReadN(n)
	return err
}
