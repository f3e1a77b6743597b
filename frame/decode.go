/*
NAME
  decode.go

DESCRIPTION
  decode.go implements Decode, dispatching on the 1-byte frame type tag and
  enforcing the cross-field invariants spelled out in RFC 9000: ACK range
  monotonicity, CRYPTO offset bounds, and NEW_CONNECTION_ID length/ordering.

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
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/ausocean/quiche/qerr"
	"github.com/ausocean/quiche/varint"
	"github.com/ausocean/quiche/wire"
)

// Decode reads one frame from the front of c.
func Decode(c *wire.Cursor) (Frame, error) {
	tyByte, err := c.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "frame: read type byte")
	}

	if tyByte >= byte(StreamRangeLow) && tyByte <= byte(StreamRangeHigh) {
		return decodeStream(c, tyByte)
	}

	switch Type(tyByte) {
	case TypePadding:
		return Padding{}, nil
	case TypePing:
		return Ping{}, nil
	case TypeAck:
		largest, delay, first, ranges, err := decodeAckBody(c)
		if err != nil {
			return nil, err
		}
		return Ack{largest, delay, first, ranges}, nil
	case TypeAckECN:
		largest, delay, first, ranges, err := decodeAckBody(c)
		if err != nil {
			return nil, err
		}
		ect0, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "ack_ecn: ect0")
		}
		ect1, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "ack_ecn: ect1")
		}
		ecnce, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "ack_ecn: ecn_ce")
		}
		return AckECN{largest, delay, first, ranges, ect0, ect1, ecnce}, nil
	case TypeResetStream:
		streamID, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "reset_stream: stream_id")
		}
		appErr, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "reset_stream: app_error")
		}
		finalSize, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "reset_stream: final_size")
		}
		return ResetStream{streamID, appErr, finalSize}, nil
	case TypeStopSending:
		streamID, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "stop_sending: stream_id")
		}
		appErr, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "stop_sending: app_error")
		}
		return StopSending{streamID, appErr}, nil
	case TypeCrypto:
		return decodeCrypto(c)
	case TypeNewToken:
		length, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "new_token: token_length")
		}
		token, err := c.ReadN(int(length.Uint64()))
		if err != nil {
			return nil, qerr.New(qerr.Truncated, "new_token: token bytes")
		}
		return NewTokenFrame{append([]byte(nil), token...)}, nil
	case TypeMaxData:
		max, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "max_data")
		}
		return MaxData{max}, nil
	case TypeMaxStreamData:
		streamID, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "max_stream_data: stream_id")
		}
		max, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "max_stream_data: max")
		}
		return MaxStreamData{streamID, max}, nil
	case TypeMaxStreamsBidi, TypeMaxStreamsUni:
		max, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "max_streams")
		}
		dir := Bidirectional
		if Type(tyByte) == TypeMaxStreamsUni {
			dir = Unidirectional
		}
		return MaxStreams{dir, max}, nil
	case TypeDataBlocked:
		max, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "data_blocked")
		}
		return DataBlocked{max}, nil
	case TypeStreamDataBlocked:
		streamID, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "stream_data_blocked: stream_id")
		}
		limit, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "stream_data_blocked: limit")
		}
		return StreamDataBlocked{streamID, limit}, nil
	case TypeStreamsBlockedBidi, TypeStreamsBlockedUni:
		max, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "streams_blocked")
		}
		dir := Bidirectional
		if Type(tyByte) == TypeStreamsBlockedUni {
			dir = Unidirectional
		}
		return StreamsBlocked{dir, max}, nil
	case TypeNewConnectionID:
		return decodeNewConnectionID(c)
	case TypeRetireConnectionID:
		seq, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "retire_connection_id")
		}
		return RetireConnectionID{seq}, nil
	case TypePathChallenge:
		data, err := c.ReadN(8)
		if err != nil {
			return nil, qerr.New(qerr.Truncated, "path_challenge: data")
		}
		var arr [8]byte
		copy(arr[:], data)
		return PathChallenge{arr}, nil
	case TypePathResponse:
		data, err := c.ReadN(8)
		if err != nil {
			return nil, qerr.New(qerr.Truncated, "path_response: data")
		}
		var arr [8]byte
		copy(arr[:], data)
		return PathResponse{arr}, nil
	case TypeConnectionCloseTransport:
		return decodeConnectionCloseTransport(c)
	case TypeConnectionCloseApplication:
		return decodeConnectionCloseApplication(c)
	case TypeHandshakeDone:
		return HandshakeDone{}, nil
	default:
		return nil, qerr.New(qerr.FrameEncodingError, "unknown frame type")
	}
}

func decodeStream(c *wire.Cursor, tyByte byte) (Frame, error) {
	flags := tyByte & 0x07
	streamID, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "stream: stream_id")
	}
	var offset varint.VarInt
	off := flags&StreamFlagOFF != 0
	if off {
		offset, err = varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "stream: offset")
		}
	}
	var data []byte
	explicitLen := flags&StreamFlagLEN != 0
	if explicitLen {
		length, err := varint.Decode(c)
		if err != nil {
			return nil, errors.Wrap(err, "stream: length")
		}
		data, err = c.ReadN(int(length.Uint64()))
		if err != nil {
			return nil, qerr.New(qerr.Truncated, "stream: data")
		}
	} else {
		data = c.Rest()
		if err := c.Advance(len(data)); err != nil {
			return nil, errors.Wrap(err, "stream: drain remainder")
		}
	}
	return Stream{
		StreamID: streamID,
		Offset:   offset,
		Fin:      flags&StreamFlagFIN != 0,
		Off:      off,
		Len:      explicitLen,
		Data:     append([]byte(nil), data...),
	}, nil
}

// decodeAckBody reads largest_ack, ack_delay, range_count, first_range, and
// range_count additional (gap, length) pairs, validating as it goes that no
// computed packet number goes negative (RFC 9000 §19.3.1).
func decodeAckBody(c *wire.Cursor) (largest, delay, first varint.VarInt, ranges []AckRange, err error) {
	largest, err = varint.Decode(c)
	if err != nil {
		return 0, 0, 0, nil, errors.Wrap(err, "ack: largest_acknowledged")
	}
	delay, err = varint.Decode(c)
	if err != nil {
		return 0, 0, 0, nil, errors.Wrap(err, "ack: ack_delay")
	}
	count, err := varint.Decode(c)
	if err != nil {
		return 0, 0, 0, nil, errors.Wrap(err, "ack: range_count")
	}
	first, err = varint.Decode(c)
	if err != nil {
		return 0, 0, 0, nil, errors.Wrap(err, "ack: first_ack_range")
	}

	nextSmallest, err := largest.Sub(first)
	if err != nil {
		return 0, 0, 0, nil, err
	}

	ranges = make([]AckRange, 0, count.Uint64())
	for i := uint64(0); i < count.Uint64(); i++ {
		gap, err := varint.Decode(c)
		if err != nil {
			return 0, 0, 0, nil, errors.Wrap(err, "ack: range gap")
		}
		length, err := varint.Decode(c)
		if err != nil {
			return 0, 0, 0, nil, errors.Wrap(err, "ack: range length")
		}

		gapPlus2, err := gap.AddN(2)
		if err != nil {
			return 0, 0, 0, nil, err
		}
		if gapPlus2 > nextSmallest {
			return 0, 0, 0, nil, qerr.New(qerr.FrameEncodingError, "ack: gap+2 exceeds next_smallest, negative packet number")
		}
		nextSmallest, err = nextSmallest.Sub(gapPlus2)
		if err != nil {
			return 0, 0, 0, nil, err
		}
		if length > nextSmallest {
			return 0, 0, 0, nil, qerr.New(qerr.FrameEncodingError, "ack: range length exceeds next_smallest")
		}
		nextSmallest, err = nextSmallest.Sub(length)
		if err != nil {
			return 0, 0, 0, nil, err
		}

		ranges = append(ranges, AckRange{gap, length})
	}
	return largest, delay, first, ranges, nil
}

func decodeCrypto(c *wire.Cursor) (Frame, error) {
	offset, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "crypto: offset")
	}
	length, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "crypto: length")
	}
	if offset.Uint64() > varint.Max-length.Uint64() {
		return nil, qerr.New(qerr.CryptoBufferExceeded, "crypto: offset+length exceeds 2^62-1")
	}
	data, err := c.ReadN(int(length.Uint64()))
	if err != nil {
		return nil, qerr.New(qerr.Truncated, "crypto: data")
	}
	return Crypto{offset, append([]byte(nil), data...)}, nil
}

func decodeNewConnectionID(c *wire.Cursor) (Frame, error) {
	seq, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "new_connection_id: sequence_number")
	}
	retirePriorTo, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "new_connection_id: retire_prior_to")
	}
	if retirePriorTo > seq {
		return nil, qerr.New(qerr.FrameEncodingError, "new_connection_id: retire_prior_to exceeds sequence_number")
	}
	cidLenByte, err := c.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "new_connection_id: cid_len")
	}
	cidLen := int(cidLenByte)
	if cidLen < 1 || cidLen > 20 {
		return nil, qerr.New(qerr.FrameEncodingError, "new_connection_id: cid_len out of [1,20]")
	}
	cid, err := c.ReadN(cidLen)
	if err != nil {
		return nil, qerr.New(qerr.Truncated, "new_connection_id: connection_id")
	}
	token, err := c.ReadN(16)
	if err != nil {
		return nil, qerr.New(qerr.Truncated, "new_connection_id: stateless_reset_token")
	}
	var tokenArr [16]byte
	copy(tokenArr[:], token)
	return NewConnectionID{seq, retirePriorTo, append([]byte(nil), cid...), tokenArr}, nil
}

func decodeReasonPhrase(c *wire.Cursor, length varint.VarInt) (string, error) {
	raw, err := c.ReadN(int(length.Uint64()))
	if err != nil {
		return "", qerr.New(qerr.Truncated, "reason_phrase bytes")
	}
	if !utf8.Valid(raw) {
		return "", qerr.New(qerr.FrameEncodingError, "reason_phrase is not valid UTF-8")
	}
	return string(raw), nil
}

func decodeConnectionCloseTransport(c *wire.Cursor) (Frame, error) {
	errorCode, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "connection_close: error_code")
	}
	triggering, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "connection_close: triggering_frame_type")
	}
	length, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "connection_close: reason_length")
	}
	reason, err := decodeReasonPhrase(c, length)
	if err != nil {
		return nil, err
	}
	return ConnectionCloseTransport{errorCode, triggering, reason}, nil
}

func decodeConnectionCloseApplication(c *wire.Cursor) (Frame, error) {
	errorCode, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "connection_close: error_code")
	}
	length, err := varint.Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "connection_close: reason_length")
	}
	reason, err := decodeReasonPhrase(c, length)
	if err != nil {
		return nil, err
	}
	return ConnectionCloseApplication{errorCode, reason}, nil
}
