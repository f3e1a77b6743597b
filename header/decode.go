/*
NAME
  decode.go

DESCRIPTION
  decode.go implements Decode, discriminating long vs. short by bit 7 of
  byte 0 and, for long headers, the long-packet-type field to select the
  matching sub-form.

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
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/ausocean/quiche/bitfield"
	"github.com/ausocean/quiche/qerr"
	"github.com/ausocean/quiche/varint"
	"github.com/ausocean/quiche/wire"
)

// Decode reads one header from the front of c. For the short header and the
// Initial, 0-RTT, and Handshake sub-forms it consumes exactly the header's
// own bytes and leaves whatever follows in c; Retry and Version-Negotiate
// consume everything remaining in c.
func Decode(c *wire.Cursor) (Header, error) {
	first, err := c.PeekByte()
	if err != nil {
		return nil, errors.Wrap(err, "header: peek first byte")
	}

	fields, err := bitfield.Split(first, bitfield.Width1, bitfield.Width1, bitfield.Width2, bitfield.Width4)
	if err != nil {
		return nil, err
	}
	formBit, fixedBit, lptField, tsb := fields[0], fields[1], fields[2], fields[3]

	if formBit.Value() == 0 {
		return decodeShort(c, first)
	}

	_, _ = c.ReadByte() // consume the first byte now that form is confirmed long; PeekByte already proved it exists.

	var verBuf [4]byte
	rawVer, err := c.ReadN(4)
	if err != nil {
		return nil, qerr.New(qerr.Truncated, "header: version")
	}
	copy(verBuf[:], rawVer)
	version := binary.LittleEndian.Uint32(verBuf[:])

	destCID, err := decodeCID(c)
	if err != nil {
		return nil, err
	}
	srcCID, err := decodeCID(c)
	if err != nil {
		return nil, err
	}

	lpt := LongPacketType(lptField.Value())

	if lpt == Initial && fixedBit.Value() == 0 {
		return decodeVersionNegotiate(c, destCID, srcCID)
	}

	switch lpt {
	case Initial:
		return decodeInitial(c, version, destCID, srcCID, tsb.Value())
	case ZeroRTT:
		return decodeZeroRTTOrHandshake(c, ZeroRTT, version, destCID, srcCID, tsb.Value())
	case Handshake:
		return decodeZeroRTTOrHandshake(c, Handshake, version, destCID, srcCID, tsb.Value())
	case Retry:
		return decodeRetry(c, version, destCID, srcCID)
	default:
		return nil, qerr.New(qerr.FrameEncodingError, "header: unknown long-packet-type")
	}
}

func decodeCID(c *wire.Cursor) ([]byte, error) {
	lenByte, err := c.ReadByte()
	if err != nil {
		return nil, qerr.New(qerr.Truncated, "header: connection id length")
	}
	cid, err := c.ReadN(decodeCIDLen(lenByte))
	if err != nil {
		return nil, qerr.New(qerr.Truncated, "header: connection id bytes")
	}
	return append([]byte(nil), cid...), nil
}

func pnLengthFromTSB(tsb uint8) int {
	return int(tsb&0x03) + 1
}

func decodeInitial(c *wire.Cursor, version uint32, destCID, srcCID []byte, tsb uint8) (Header, error) {
	tokenLen, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "header: initial token_length")
	}
	token, err := c.ReadN(int(tokenLen.Uint64()))
	if err != nil {
		return nil, qerr.New(qerr.Truncated, "header: initial token bytes")
	}
	length, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "header: initial length")
	}
	pn, err := DecodePacketNumber(c, pnLengthFromTSB(tsb))
	if err != nil {
		return nil, err
	}
	return InitialHeader{
		Version:      version,
		DestCID:      destCID,
		SrcCID:       srcCID,
		Token:        append([]byte(nil), token...),
		Length:       length,
		PacketNumber: pn,
	}, nil
}

func decodeZeroRTTOrHandshake(c *wire.Cursor, lpt LongPacketType, version uint32, destCID, srcCID []byte, tsb uint8) (Header, error) {
	length, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "header: length")
	}
	pn, err := DecodePacketNumber(c, pnLengthFromTSB(tsb))
	if err != nil {
		return nil, err
	}
	if lpt == ZeroRTT {
		return ZeroRTTHeader{Version: version, DestCID: destCID, SrcCID: srcCID, Length: length, PacketNumber: pn}, nil
	}
	return HandshakeHeader{Version: version, DestCID: destCID, SrcCID: srcCID, Length: length, PacketNumber: pn}, nil
}

func decodeRetry(c *wire.Cursor, version uint32, destCID, srcCID []byte) (Header, error) {
	rest := c.Rest()
	if len(rest) < 16 {
		return nil, qerr.New(qerr.Truncated, "header: retry integrity tag")
	}
	tokenLen := len(rest) - 16
	token := rest[:tokenLen]
	var tag [16]byte
	copy(tag[:], rest[tokenLen:])
	if err := c.Advance(len(rest)); err != nil {
		return nil, errors.Wrap(err, "header: retry drain")
	}
	return RetryHeader{
		Version:           version,
		DestCID:           destCID,
		SrcCID:            srcCID,
		RetryToken:        append([]byte(nil), token...),
		RetryIntegrityTag: tag,
	}, nil
}

func decodeVersionNegotiate(c *wire.Cursor, destCID, srcCID []byte) (Header, error) {
	rest := c.Rest()
	if len(rest)%4 != 0 {
		return nil, qerr.New(qerr.FrameEncodingError, "header: version-negotiate extension not a whole number of u32s")
	}
	versions := make([]uint32, 0, len(rest)/4)
	for i := 0; i < len(rest); i += 4 {
		versions = append(versions, binary.LittleEndian.Uint32(rest[i:i+4]))
	}
	if err := c.Advance(len(rest)); err != nil {
		return nil, errors.Wrap(err, "header: version-negotiate drain")
	}
	return VersionNegotiateHeader{DestCID: destCID, SrcCID: srcCID, SupportedVersions: versions}, nil
}

func decodeShort(c *wire.Cursor, first byte) (Header, error) {
	_, _ = c.ReadByte() // consume the first byte; already peeked by the caller.
	fields, err := bitfield.Split(first, bitfield.Width1, bitfield.Width1, bitfield.Width1, bitfield.Width2, bitfield.Width1, bitfield.Width2)
	if err != nil {
		return nil, err
	}
	spin, _, keyPhase, pnLen := fields[2], fields[3], fields[4], fields[5]

	destCID, err := decodeCID(c)
	if err != nil {
		return nil, err
	}
	pn, err := DecodePacketNumber(c, int(pnLen.Value())+1)
	if err != nil {
		return nil, err
	}
	return ShortHeader{
		SpinBit:            spin.Value() == 1,
		KeyPhase:           keyPhase.Value() == 1,
		PacketNumberLength: int(pnLen.Value()) + 1,
		DestCID:            destCID,
		PacketNumber:       pn,
	}, nil
}
