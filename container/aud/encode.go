/*
NAME
  encode.go

DESCRIPTION
  encode.go provides writing of mono 16-bit IMA ADPCM AUD files.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package aud

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ausocean/aud2wav/codec/adpcm"
)

// DefaultBlockPayload is the encoded payload size used per block by Encode
// when no size is given.
const DefaultBlockPayload = 512

// WriteBlocks writes an AUD file of format f holding the given encoded block
// payloads as mono 16-bit IMA ADPCM at the given sample rate. It returns the
// number of bytes written.
func WriteBlocks(dst io.Writer, f Format, rate uint16, payloads [][]byte) (int, error) {
	var encSize, decSize int
	for _, p := range payloads {
		if len(p) > MaxPayload {
			return 0, fmt.Errorf("block payload of %d bytes exceeds %d", len(p), MaxPayload)
		}
		encSize += BlockHeaderSize + len(p)
		decSize += len(p) * 4
	}

	le := binary.LittleEndian
	buf := le.AppendUint16(nil, rate)
	buf = le.AppendUint16(buf, uint16(encSize))
	buf = le.AppendUint16(buf, uint16(encSize>>16))
	switch f {
	case FormatNew:
		buf = le.AppendUint16(buf, uint16(decSize))
		buf = le.AppendUint16(buf, uint16(decSize>>16))
	case FormatOld:
	default:
		return 0, ErrUnknownFormat
	}
	buf = append(buf, Flag16Bit, CodecIMA)

	n, err := dst.Write(buf)
	if err != nil {
		return n, err
	}

	for _, p := range payloads {
		bh := BlockHeader{EncSize: uint16(len(p)), DecSize: uint16(len(p) * 4), Marker: BlockMarker}
		_n, err := dst.Write(bh.appendBinary(make([]byte, 0, BlockHeaderSize+len(p))))
		n += _n
		if err != nil {
			return n, err
		}
		_n, err = dst.Write(p)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Encode encodes samples as a continuous IMA ADPCM stream, split into blocks
// of blockPayload encoded bytes, and writes it as an AUD file of format f.
// An odd sample count is padded with a trailing zero nibble.
func Encode(dst io.Writer, f Format, rate uint16, samples []int16, blockPayload int) (int, error) {
	if blockPayload <= 0 {
		blockPayload = DefaultBlockPayload
	}
	if blockPayload > MaxPayload {
		return 0, fmt.Errorf("block payload of %d bytes exceeds %d", blockPayload, MaxPayload)
	}

	enc, _ := adpcm.EncodeBytes(make([]byte, 0, (len(samples)+1)/2), adpcm.State{}, samples)
	var payloads [][]byte
	for len(enc) > 0 {
		n := min(blockPayload, len(enc))
		payloads = append(payloads, enc[:n])
		enc = enc[n:]
	}
	return WriteBlocks(dst, f, rate, payloads)
}
