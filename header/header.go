/*
NAME
  header.go

DESCRIPTION
  header.go declares the concrete Go type for each of the five long-header
  sub-forms plus the short header, and their IsLong() accessors.

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

import "github.com/ausocean/quiche/varint"

// InitialHeader is the long-header Initial sub-form (long-packet-type 0,
// fixed bit 1). Length is the VarInt byte count of the packet number plus
// the payload frames that follow in the datagram. packet.New computes it;
// packet.Decode does not use it to bound the payload and reads frames up to
// the end of the buffer.
type InitialHeader struct {
	Version      uint32
	DestCID      []byte
	SrcCID       []byte
	Token        []byte
	Length       varint.VarInt
	PacketNumber PacketNumber
}

func (InitialHeader) IsLong() bool { return true }

// ZeroRTTHeader is the long-header 0-RTT sub-form (long-packet-type 1).
type ZeroRTTHeader struct {
	Version      uint32
	DestCID      []byte
	SrcCID       []byte
	Length       varint.VarInt
	PacketNumber PacketNumber
}

func (ZeroRTTHeader) IsLong() bool { return true }

// HandshakeHeader is the long-header Handshake sub-form (long-packet-type 2).
type HandshakeHeader struct {
	Version      uint32
	DestCID      []byte
	SrcCID       []byte
	Length       varint.VarInt
	PacketNumber PacketNumber
}

func (HandshakeHeader) IsLong() bool { return true }

// RetryHeader is the long-header Retry sub-form (long-packet-type 3). It
// carries no frames: the retry token and integrity tag consume the rest of
// the datagram.
type RetryHeader struct {
	Version           uint32
	DestCID           []byte
	SrcCID            []byte
	RetryToken        []byte
	RetryIntegrityTag [16]byte
}

func (RetryHeader) IsLong() bool { return true }

// VersionNegotiateHeader is the long-header Version-Negotiate sub-form:
// fixed bit 0, long-packet-type 0, version 0. Its extension is a packed
// list of the server's supported versions filling the rest of the
// datagram.
type VersionNegotiateHeader struct {
	DestCID           []byte
	SrcCID            []byte
	SupportedVersions []uint32
}

func (VersionNegotiateHeader) IsLong() bool { return true }

// ShortHeader is the 1-RTT short header (first-byte MSB 0, next bit 1).
// DestCID carries an explicit length byte on the wire so the header can be
// decoded standalone; in a real connection the length is negotiated out of
// band and implied rather than carried.
type ShortHeader struct {
	SpinBit            bool
	KeyPhase           bool
	PacketNumberLength int // 1-4
	DestCID            []byte
	PacketNumber       PacketNumber
}

func (ShortHeader) IsLong() bool { return false }
