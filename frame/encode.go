/*
NAME
  encode.go

DESCRIPTION
  encode.go implements Frame.Encode for every frame type.

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

func (Padding) Encode(dst []byte) []byte {
	return append(dst, byte(TypePadding))
}

func (Ping) Encode(dst []byte) []byte {
	return append(dst, byte(TypePing))
}

func (f Ack) Encode(dst []byte) []byte {
	return encodeAckBody(dst, byte(TypeAck), f.LargestAcknowledged, f.AckDelay, f.FirstAckRange, f.AckRanges)
}

func (f AckECN) Encode(dst []byte) []byte {
	dst = encodeAckBody(dst, byte(TypeAckECN), f.LargestAcknowledged, f.AckDelay, f.FirstAckRange, f.AckRanges)
	dst = f.ECT0Count.Append(dst)
	dst = f.ECT1Count.Append(dst)
	dst = f.ECNCECount.Append(dst)
	return dst
}

// encodeAckBody writes the type byte, largest_ack, ack_delay, range_count,
// first_range, then (gap, length) for every additional range. Shared by ACK
// and ACK_ECN, which differ only in their trailing ECN counters.
func encodeAckBody(dst []byte, ty byte, largest, delay, first varint.VarInt, ranges []AckRange) []byte {
	dst = append(dst, ty)
	dst = largest.Append(dst)
	dst = delay.Append(dst)
	count, _ := varint.New(uint64(len(ranges)))
	dst = count.Append(dst)
	dst = first.Append(dst)
	for _, r := range ranges {
		dst = r.Gap.Append(dst)
		dst = r.Length.Append(dst)
	}
	return dst
}

func (f ResetStream) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeResetStream))
	dst = f.StreamID.Append(dst)
	dst = f.AppErrorCode.Append(dst)
	dst = f.FinalSize.Append(dst)
	return dst
}

func (f StopSending) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeStopSending))
	dst = f.StreamID.Append(dst)
	dst = f.AppErrorCode.Append(dst)
	return dst
}

func (f Crypto) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeCrypto))
	dst = f.Offset.Append(dst)
	length, _ := varint.New(uint64(len(f.Data)))
	dst = length.Append(dst)
	dst = append(dst, f.Data...)
	return dst
}

func (f NewTokenFrame) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeNewToken))
	length, _ := varint.New(uint64(len(f.Token)))
	dst = length.Append(dst)
	dst = append(dst, f.Token...)
	return dst
}

func (s Stream) Encode(dst []byte) []byte {
	dst = append(dst, byte(s.Type()))
	dst = s.StreamID.Append(dst)
	if s.Off {
		dst = s.Offset.Append(dst)
	}
	if s.Len {
		length, _ := varint.New(uint64(len(s.Data)))
		dst = length.Append(dst)
	}
	dst = append(dst, s.Data...)
	return dst
}

func (f MaxData) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeMaxData))
	return f.Maximum.Append(dst)
}

func (f MaxStreamData) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeMaxStreamData))
	dst = f.StreamID.Append(dst)
	return f.Maximum.Append(dst)
}

func (f MaxStreams) Encode(dst []byte) []byte {
	dst = append(dst, byte(f.Type()))
	return f.Maximum.Append(dst)
}

func (f DataBlocked) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeDataBlocked))
	return f.Maximum.Append(dst)
}

func (f StreamDataBlocked) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeStreamDataBlocked))
	dst = f.StreamID.Append(dst)
	return f.Limit.Append(dst)
}

func (f StreamsBlocked) Encode(dst []byte) []byte {
	dst = append(dst, byte(f.Type()))
	return f.Maximum.Append(dst)
}

func (f NewConnectionID) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeNewConnectionID))
	dst = f.SequenceNumber.Append(dst)
	dst = f.RetirePriorTo.Append(dst)
	dst = append(dst, byte(len(f.ConnectionID)))
	dst = append(dst, f.ConnectionID...)
	dst = append(dst, f.StatelessResetToken[:]...)
	return dst
}

func (f RetireConnectionID) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeRetireConnectionID))
	return f.SequenceNumber.Append(dst)
}

func (f PathChallenge) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypePathChallenge))
	return append(dst, f.Data[:]...)
}

func (f PathResponse) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypePathResponse))
	return append(dst, f.Data[:]...)
}

func (f ConnectionCloseTransport) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeConnectionCloseTransport))
	dst = f.ErrorCode.Append(dst)
	dst = f.TriggeringFrame.Append(dst)
	reason := []byte(f.ReasonPhrase)
	length, _ := varint.New(uint64(len(reason)))
	dst = length.Append(dst)
	dst = append(dst, reason...)
	return dst
}

func (f ConnectionCloseApplication) Encode(dst []byte) []byte {
	dst = append(dst, byte(TypeConnectionCloseApplication))
	dst = f.ErrorCode.Append(dst)
	reason := []byte(f.ReasonPhrase)
	length, _ := varint.New(uint64(len(reason)))
	dst = length.Append(dst)
	dst = append(dst, reason...)
	return dst
}

func (HandshakeDone) Encode(dst []byte) []byte {
	return append(dst, byte(TypeHandshakeDone))
}
