/*
NAME
  encode.go

DESCRIPTION
  encode.go implements Header.Encode for all six variants, assembling each
  bit-packed first byte via the bitfield package's MSB-first Builder.

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

	"github.com/ausocean/quiche/bitfield"
	"github.com/ausocean/quiche/qerr"
	"github.com/ausocean/quiche/varint"
)

// longFirstByte assembles [form=1, fixed, lpt(2), tsb(4)] MSB-first.
func longFirstByte(fixed bool, lpt LongPacketType, tsb uint8) (byte, error) {
	form, err := bitfield.New(bitfield.Width1, 1)
	if err != nil {
		return 0, err
	}
	fixedBit, err := bitfield.New(bitfield.Width1, boolBit(fixed))
	if err != nil {
		return 0, err
	}
	lptField, err := bitfield.New(bitfield.Width2, uint8(lpt))
	if err != nil {
		return 0, err
	}
	tsbField, err := bitfield.New(bitfield.Width4, tsb)
	if err != nil {
		return 0, err
	}
	b := new(bitfield.Builder)
	b.Push(form).Push(fixedBit).Push(lptField).Push(tsbField)
	return b.Byte(), nil
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// fixedPrefix assembles the first byte, 4-byte little-endian version, and
// the two length-prefixed connection IDs common to every long-header
// sub-form, enforcing the defensive 47-byte bound over exactly this
// prefix.
func fixedPrefix(firstByte byte, version uint32, destCID, srcCID []byte) ([]byte, error) {
	dst := make([]byte, 0, maxFixedPrefixLen)
	dst = append(dst, firstByte)
	var verBuf [4]byte
	binary.LittleEndian.PutUint32(verBuf[:], version)
	dst = append(dst, verBuf[:]...)
	dst = encodeCID(dst, destCID)
	dst = encodeCID(dst, srcCID)
	if len(dst) > maxFixedPrefixLen {
		return nil, qerr.New(qerr.LengthBoundExceeded, "long header fixed prefix exceeds 47 bytes")
	}
	return dst, nil
}

// pnLengthTSB packs the 2-bit reserved field (always 0) and 2-bit
// packet-number-length (stored as length-1) into the 4 type-specific bits
// shared by Initial, 0-RTT, and Handshake.
func pnLengthTSB(pnLength int) (uint8, error) {
	reserved, err := bitfield.New(bitfield.Width2, 0)
	if err != nil {
		return 0, err
	}
	pnLenField, err := bitfield.New(bitfield.Width2, uint8(pnLength-1))
	if err != nil {
		return 0, err
	}
	b := new(bitfield.Builder)
	b.Push(reserved).Push(pnLenField)
	return b.Byte() >> 4, nil
}

func (h InitialHeader) Encode(dst []byte) ([]byte, error) {
	tsb, err := pnLengthTSB(h.PacketNumber.Length)
	if err != nil {
		return nil, err
	}
	first, err := longFirstByte(true, Initial, tsb)
	if err != nil {
		return nil, err
	}
	prefix, err := fixedPrefix(first, h.Version, h.DestCID, h.SrcCID)
	if err != nil {
		return nil, err
	}
	dst = append(dst, prefix...)
	tokenLen, err := varint.New(uint64(len(h.Token)))
	if err != nil {
		return nil, err
	}
	dst = tokenLen.Append(dst)
	dst = append(dst, h.Token...)
	dst = h.Length.Append(dst)
	dst = h.PacketNumber.Encode(dst)
	return dst, nil
}

func encodeZeroRTTOrHandshake(dst []byte, lpt LongPacketType, version uint32, destCID, srcCID []byte, length varint.VarInt, pn PacketNumber) ([]byte, error) {
	tsb, err := pnLengthTSB(pn.Length)
	if err != nil {
		return nil, err
	}
	first, err := longFirstByte(true, lpt, tsb)
	if err != nil {
		return nil, err
	}
	prefix, err := fixedPrefix(first, version, destCID, srcCID)
	if err != nil {
		return nil, err
	}
	dst = append(dst, prefix...)
	dst = length.Append(dst)
	dst = pn.Encode(dst)
	return dst, nil
}

func (h ZeroRTTHeader) Encode(dst []byte) ([]byte, error) {
	return encodeZeroRTTOrHandshake(dst, ZeroRTT, h.Version, h.DestCID, h.SrcCID, h.Length, h.PacketNumber)
}

func (h HandshakeHeader) Encode(dst []byte) ([]byte, error) {
	return encodeZeroRTTOrHandshake(dst, Handshake, h.Version, h.DestCID, h.SrcCID, h.Length, h.PacketNumber)
}

func (h RetryHeader) Encode(dst []byte) ([]byte, error) {
	first, err := longFirstByte(true, Retry, 0)
	if err != nil {
		return nil, err
	}
	prefix, err := fixedPrefix(first, h.Version, h.DestCID, h.SrcCID)
	if err != nil {
		return nil, err
	}
	dst = append(dst, prefix...)
	dst = append(dst, h.RetryToken...)
	dst = append(dst, h.RetryIntegrityTag[:]...)
	return dst, nil
}

func (h VersionNegotiateHeader) Encode(dst []byte) ([]byte, error) {
	// fixed bit is zero, long-packet-type is 0, version is 0.
	first, err := longFirstByte(false, Initial, 0)
	if err != nil {
		return nil, err
	}
	prefix, err := fixedPrefix(first, 0, h.DestCID, h.SrcCID)
	if err != nil {
		return nil, err
	}
	dst = append(dst, prefix...)
	for _, v := range h.SupportedVersions {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v)
		dst = append(dst, buf[:]...)
	}
	return dst, nil
}

func (h ShortHeader) Encode(dst []byte) ([]byte, error) {
	form, err := bitfield.New(bitfield.Width1, 0)
	if err != nil {
		return nil, err
	}
	fixed, err := bitfield.New(bitfield.Width1, 1)
	if err != nil {
		return nil, err
	}
	spin, err := bitfield.New(bitfield.Width1, boolBit(h.SpinBit))
	if err != nil {
		return nil, err
	}
	reserved, err := bitfield.New(bitfield.Width2, 0)
	if err != nil {
		return nil, err
	}
	keyPhase, err := bitfield.New(bitfield.Width1, boolBit(h.KeyPhase))
	if err != nil {
		return nil, err
	}
	pnLen, err := bitfield.New(bitfield.Width2, uint8(h.PacketNumberLength-1))
	if err != nil {
		return nil, err
	}
	b := new(bitfield.Builder)
	b.Push(form).Push(fixed).Push(spin).Push(reserved).Push(keyPhase).Push(pnLen)

	out := make([]byte, 0, maxShortHeaderLen)
	out = append(out, b.Byte())
	out = encodeCID(out, h.DestCID)
	out = h.PacketNumber.Encode(out)
	if len(out) > maxShortHeaderLen {
		return nil, qerr.New(qerr.LengthBoundExceeded, "short header exceeds 33 bytes")
	}
	return append(dst, out...), nil
}
