/*
NAME
  qerr.go

DESCRIPTION
  qerr.go defines the codec's single error kind and its categories, plus
  the separate transport-error-code taxonomy carried as CONNECTION_CLOSE
  payload.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package qerr defines the codec's error taxonomy.
//
// The codec never recovers internally; failures are returned by value,
// mostly as a *qerr.Error carrying one of the Kind categories below, with
// call-site context attached via github.com/pkg/errors the way the rest of
// the AusOcean stack wraps low-level failures. A cursor read that runs past
// the end of the buffer and is not translated at its call site surfaces as
// a wrapped wire.ErrTruncated instead, and packet.New reports frames on a
// Retry or Version-Negotiate header with a plain error.
package qerr

import "github.com/pkg/errors"

// Kind categorizes a codec failure.
type Kind int

const (
	// ValueExceedsMaximum: a VarInt constructor input is above 2^62-1.
	ValueExceedsMaximum Kind = iota
	// Truncated: a buffer ended mid-field.
	Truncated
	// FrameEncodingError: a malformed frame (unknown type, impossible ACK
	// range, invalid cid_len, retire_prior_to > seq, bad UTF-8 reason).
	FrameEncodingError
	// CryptoBufferExceeded: a Crypto frame's offset+length > 2^62-1.
	CryptoBufferExceeded
	// ProtocolViolation: reserved for higher-layer invariants; no code path
	// in this codec returns it.
	ProtocolViolation
	// LengthBoundExceeded: a long header's fixed prefix (first byte,
	// version, both connection IDs) > 47 bytes or a short header > 33 bytes
	// on encode.
	LengthBoundExceeded
)

func (k Kind) String() string {
	switch k {
	case ValueExceedsMaximum:
		return "value-exceeds-maximum"
	case Truncated:
		return "truncated"
	case FrameEncodingError:
		return "frame-encoding-error"
	case CryptoBufferExceeded:
		return "crypto-buffer-exceeded"
	case ProtocolViolation:
		return "protocol-violation"
	case LengthBoundExceeded:
		return "length-bound-exceeded"
	default:
		return "unknown-error-kind"
	}
}

// Error is the codec's single error type. It always carries a Kind and a
// diagnostic message; higher layers that need richer context can use
// errors.Wrap/errors.Wrapf on it without losing the Kind (errors.Cause
// unwraps back to the *Error).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// New builds an *Error of the given kind with the given message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Is reports whether err is a *qerr.Error of the given kind, unwrapping any
// github.com/pkg/errors context in between.
func Is(err error, kind Kind) bool {
	var e *Error
	cause := errors.Cause(err)
	e, ok := cause.(*Error)
	return ok && e.Kind == kind
}

// TransportError is the numeric transport-error taxonomy used as payload of
// CONNECTION_CLOSE frames. It is not a codec error — the codec decodes and
// encodes it as an opaque VarInt, never interprets it.
type TransportError uint64

const (
	NoError                  TransportError = 0x00
	InternalError            TransportError = 0x01
	ConnectionRefused        TransportError = 0x02
	FlowControlError         TransportError = 0x03
	StreamLimitError         TransportError = 0x04
	StreamStateError         TransportError = 0x05
	FinalSizeError           TransportError = 0x06
	FrameEncodingTransportErr TransportError = 0x07
	TransportParameterError  TransportError = 0x08
	ConnectionIDLimitError   TransportError = 0x09
	ProtocolViolationErr     TransportError = 0x0a
	InvalidToken             TransportError = 0x0b
	ApplicationError         TransportError = 0x0c
	CryptoBufferExceededErr  TransportError = 0x0d
	KeyUpdateError           TransportError = 0x0e
	AEADLimitReached         TransportError = 0x0f
	NoViablePath             TransportError = 0x10
)

// CryptoErrorRangeStart and CryptoErrorRangeEnd bound the TLS-alert-derived
// crypto error codepoint range (RFC 9000 §20.1).
const (
	CryptoErrorRangeStart TransportError = 0x0100
	CryptoErrorRangeEnd   TransportError = 0x01ff
)

// IsCryptoError reports whether code falls in the crypto-error range.
func (t TransportError) IsCryptoError() bool {
	return t >= CryptoErrorRangeStart && t <= CryptoErrorRangeEnd
}
