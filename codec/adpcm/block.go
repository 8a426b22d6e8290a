/*
NAME
  block.go

DESCRIPTION
  block.go provides decoding of self-contained IMA ADPCM blocks as found in
  the data chunk of WAVE_FORMAT_IMA_ADPCM files.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package adpcm

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// BlockHeaderSize is the number of bytes in the header of an IMA ADPCM block:
// an int16 sample, a uint8 step index and a reserved zero byte.
const BlockHeaderSize = 4

var (
	errShortBlock = errors.New("block shorter than its header")
	errBadIndex   = errors.New("block header step index out of range")
)

// BlockState returns the decoder state stored in the header of block b.
func BlockState(b []byte) (State, error) {
	if len(b) < BlockHeaderSize {
		return State{}, errors.Wrapf(errShortBlock, "got %d bytes", len(b))
	}
	s := State{
		Sample: int16(binary.LittleEndian.Uint16(b[0:2])),
		Index:  b[2],
	}
	if s.Index > MaxIndex {
		return State{}, errors.Wrapf(errBadIndex, "index %d", s.Index)
	}
	return s, nil
}

// PutBlockState writes s into the first BlockHeaderSize bytes of b.
func PutBlockState(b []byte, s State) {
	binary.LittleEndian.PutUint16(b[0:2], uint16(s.Sample))
	b[2] = s.Index
	b[3] = 0
}

// DecodeBlock decodes a single IMA ADPCM block, appending its samples to dst.
// The header sample is emitted first, followed by two samples per payload
// byte. Blocks are always decoded with the reference algorithm.
func DecodeBlock(dst []int16, b []byte) ([]int16, error) {
	s, err := BlockState(b)
	if err != nil {
		return dst, err
	}
	dst = append(dst, s.Sample)
	dst, _ = DecodeBytes(dst, s, b[BlockHeaderSize:], AlgTable)
	return dst, nil
}
