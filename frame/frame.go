/*
NAME
  frame.go

DESCRIPTION
  frame.go declares the concrete Go type for each QUIC frame variant and
  their Type() accessors.

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

import "github.com/ausocean/quiche/varint"

// AckRange is one (gap, length) pair following an ACK frame's first range.
type AckRange struct {
	Gap    varint.VarInt
	Length varint.VarInt
}

// Padding, PADDING (0x00): no content.
type Padding struct{}

func (Padding) Type() Type { return TypePadding }

// Ping, PING (0x01): no content.
type Ping struct{}

func (Ping) Type() Type { return TypePing }

// Ack, ACK (0x02).
type Ack struct {
	LargestAcknowledged varint.VarInt
	AckDelay            varint.VarInt
	FirstAckRange       varint.VarInt
	AckRanges           []AckRange
}

func (Ack) Type() Type { return TypeAck }

// AckECN, ACK_ECN (0x03): an Ack plus three ECN codepoint counters.
type AckECN struct {
	LargestAcknowledged varint.VarInt
	AckDelay            varint.VarInt
	FirstAckRange       varint.VarInt
	AckRanges           []AckRange
	ECT0Count           varint.VarInt
	ECT1Count           varint.VarInt
	ECNCECount          varint.VarInt
}

func (AckECN) Type() Type { return TypeAckECN }

// ResetStream, RESET_STREAM (0x04).
type ResetStream struct {
	StreamID      varint.VarInt
	AppErrorCode  varint.VarInt
	FinalSize     varint.VarInt
}

func (ResetStream) Type() Type { return TypeResetStream }

// StopSending, STOP_SENDING (0x05).
type StopSending struct {
	StreamID     varint.VarInt
	AppErrorCode varint.VarInt
}

func (StopSending) Type() Type { return TypeStopSending }

// Crypto, CRYPTO (0x06).
type Crypto struct {
	Offset varint.VarInt
	Data   []byte
}

func (Crypto) Type() Type { return TypeCrypto }

// NewTokenFrame, NEW_TOKEN (0x07). Named NewTokenFrame (not NewToken) to
// avoid colliding with a constructor-style name.
type NewTokenFrame struct {
	Token []byte
}

func (NewTokenFrame) Type() Type { return TypeNewToken }

// Stream, STREAM (0x08-0x0f). The wire type tag is derived from Off, Len,
// and Fin at encode time rather than stored, since the flags and the type
// byte must never disagree.
type Stream struct {
	StreamID varint.VarInt
	Offset   varint.VarInt // only meaningful if Off is true
	Fin      bool
	Off      bool // whether Offset is present on the wire
	Len      bool // whether an explicit Length field is present on the wire
	Data     []byte
}

func (s Stream) Type() Type {
	t := uint8(TypeStream)
	if s.Fin {
		t |= StreamFlagFIN
	}
	if s.Len {
		t |= StreamFlagLEN
	}
	if s.Off {
		t |= StreamFlagOFF
	}
	return Type(t)
}

// MaxData, MAX_DATA (0x10).
type MaxData struct {
	Maximum varint.VarInt
}

func (MaxData) Type() Type { return TypeMaxData }

// MaxStreamData, MAX_STREAM_DATA (0x11).
type MaxStreamData struct {
	StreamID varint.VarInt
	Maximum  varint.VarInt
}

func (MaxStreamData) Type() Type { return TypeMaxStreamData }

// MaxStreams, MAX_STREAMS_BIDI/UNI (0x12/0x13).
type MaxStreams struct {
	Dir     Direction
	Maximum varint.VarInt
}

func (m MaxStreams) Type() Type {
	if m.Dir == Unidirectional {
		return TypeMaxStreamsUni
	}
	return TypeMaxStreamsBidi
}

// DataBlocked, DATA_BLOCKED (0x14).
type DataBlocked struct {
	Maximum varint.VarInt
}

func (DataBlocked) Type() Type { return TypeDataBlocked }

// StreamDataBlocked, STREAM_DATA_BLOCKED (0x15).
type StreamDataBlocked struct {
	StreamID varint.VarInt
	Limit    varint.VarInt
}

func (StreamDataBlocked) Type() Type { return TypeStreamDataBlocked }

// StreamsBlocked, STREAMS_BLOCKED_BIDI/UNI (0x16/0x17).
type StreamsBlocked struct {
	Dir     Direction
	Maximum varint.VarInt
}

func (s StreamsBlocked) Type() Type {
	if s.Dir == Unidirectional {
		return TypeStreamsBlockedUni
	}
	return TypeStreamsBlockedBidi
}

// NewConnectionID, NEW_CONNECTION_ID (0x18).
type NewConnectionID struct {
	SequenceNumber      varint.VarInt
	RetirePriorTo       varint.VarInt
	ConnectionID        []byte // 1 <= len <= 20
	StatelessResetToken [16]byte
}

func (NewConnectionID) Type() Type { return TypeNewConnectionID }

// RetireConnectionID, RETIRE_CONNECTION_ID (0x19).
type RetireConnectionID struct {
	SequenceNumber varint.VarInt
}

func (RetireConnectionID) Type() Type { return TypeRetireConnectionID }

// PathChallenge, PATH_CHALLENGE (0x1a).
type PathChallenge struct {
	Data [8]byte
}

func (PathChallenge) Type() Type { return TypePathChallenge }

// PathResponse, PATH_RESPONSE (0x1b).
type PathResponse struct {
	Data [8]byte
}

func (PathResponse) Type() Type { return TypePathResponse }

// ConnectionCloseTransport, CONNECTION_CLOSE_TRANSPORT (0x1c). Unlike the
// application variant, this carries the VarInt type of the frame that
// triggered the error (0 if unknown).
type ConnectionCloseTransport struct {
	ErrorCode        varint.VarInt
	TriggeringFrame  varint.VarInt
	ReasonPhrase     string
}

func (ConnectionCloseTransport) Type() Type { return TypeConnectionCloseTransport }

// ConnectionCloseApplication, CONNECTION_CLOSE_APPLICATION (0x1d).
type ConnectionCloseApplication struct {
	ErrorCode    varint.VarInt
	ReasonPhrase string
}

func (ConnectionCloseApplication) Type() Type { return TypeConnectionCloseApplication }

// HandshakeDone, HANDSHAKE_DONE (0x1e): no content.
type HandshakeDone struct{}

func (HandshakeDone) Type() Type { return TypeHandshakeDone }
