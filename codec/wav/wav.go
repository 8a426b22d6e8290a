/*
NAME
  wav.go

DESCRIPTION
  wav.go contains builders and parsers for the headers of mono 16-bit PCM and
  IMA ADPCM wav files.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wav provides functions for building wav audio headers and for
// laying out IMA ADPCM wav data in blocks.
package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Audio formats as defined by the wav std.
const (
	PCMFormat   = 1    // PCMFormat defines the value for pcm audio.
	ADPCMFormat = 0x11 // ADPCMFormat defines the value for IMA ADPCM audio.
)

// Header sizes in bytes.
const (
	PCMHeaderSize   = 44
	ADPCMHeaderSize = 60
	riffPreamble    = 8 // "RIFF" and the riff size are not counted by the riff size.
)

const (
	channels      = 1
	pcmBitDepth   = 16
	adpcmBitDepth = 4
	pcmFmtLen     = 16
	adpcmFmtLen   = 20
	adpcmCbSize   = 2
	factLen       = 4
)

var (
	errInvalidRate   = fmt.Errorf("invalid or no sample rate defined")
	errInvalidFormat = fmt.Errorf("invalid or unsupported format")
	errShortHeader   = fmt.Errorf("not enough bytes for header")
)

// PCMHeader holds the fields of a mono 16-bit PCM wav header.
type PCMHeader struct {
	SampleRate uint32
	NumSamples uint32
}

// NewPCMHeader returns the header for numSamples mono 16-bit samples at the
// given sample rate.
func NewPCMHeader(rate, numSamples int) (PCMHeader, error) {
	if rate <= 0 {
		return PCMHeader{}, errInvalidRate
	}
	return PCMHeader{SampleRate: uint32(rate), NumSamples: uint32(numSamples)}, nil
}

// DataLen returns the length of the data chunk in bytes.
func (h PCMHeader) DataLen() uint32 { return h.NumSamples * pcmBitDepth / 8 }

// ByteRate returns the average number of bytes per second.
func (h PCMHeader) ByteRate() uint32 { return h.SampleRate * pcmBitDepth / 8 }

// MarshalBinary encodes the header into its 44 byte representation.
func (h PCMHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, PCMHeaderSize)
	le := binary.LittleEndian

	// RIFF chunk.
	copy(b[0:4], "RIFF")
	le.PutUint32(b[4:8], h.DataLen()+PCMHeaderSize-riffPreamble)
	copy(b[8:12], "WAVE")

	// fmt chunk.
	copy(b[12:16], "fmt ")
	le.PutUint32(b[16:20], pcmFmtLen)
	le.PutUint16(b[20:22], PCMFormat)
	le.PutUint16(b[22:24], channels)
	le.PutUint32(b[24:28], h.SampleRate)
	le.PutUint32(b[28:32], h.ByteRate())
	le.PutUint16(b[32:34], channels*pcmBitDepth/8)
	le.PutUint16(b[34:36], pcmBitDepth)

	// Mark start of data.
	copy(b[36:40], "data")
	le.PutUint32(b[40:44], h.DataLen())
	return b, nil
}

// WriteTo writes the encoded header to w.
func (h PCMHeader) WriteTo(w io.Writer) (int64, error) {
	b, _ := h.MarshalBinary()
	n, err := w.Write(b)
	return int64(n), err
}

// ADPCMHeader holds the fields of a mono IMA ADPCM wav header.
type ADPCMHeader struct {
	SampleRate uint32
	NumSamples uint32
	Geometry   Geometry
}

// NewADPCMHeader returns the header for numSamples samples laid out in blocks
// according to g.
func NewADPCMHeader(rate, numSamples int, g Geometry) (ADPCMHeader, error) {
	if rate <= 0 {
		return ADPCMHeader{}, errInvalidRate
	}
	if g.Payload < 0 || g.Payload > MaxPayload {
		return ADPCMHeader{}, errors.Wrapf(ErrInvalidBlockSize, "payload %d", g.Payload)
	}
	return ADPCMHeader{SampleRate: uint32(rate), NumSamples: uint32(numSamples), Geometry: g}, nil
}

// ByteRate returns the average number of bytes per second.
func (h ADPCMHeader) ByteRate() uint32 {
	return uint32(uint64(h.SampleRate) * uint64(h.Geometry.BlockAlign()) / uint64(h.Geometry.SamplesPerBlock()))
}

// MarshalBinary encodes the header into its 60 byte representation.
func (h ADPCMHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, ADPCMHeaderSize)
	le := binary.LittleEndian
	dataLen := uint32(h.Geometry.DataBytes)

	copy(b[0:4], "RIFF")
	le.PutUint32(b[4:8], dataLen+ADPCMHeaderSize-riffPreamble)
	copy(b[8:12], "WAVE")

	copy(b[12:16], "fmt ")
	le.PutUint32(b[16:20], adpcmFmtLen)
	le.PutUint16(b[20:22], ADPCMFormat)
	le.PutUint16(b[22:24], channels)
	le.PutUint32(b[24:28], h.SampleRate)
	le.PutUint32(b[28:32], h.ByteRate())
	le.PutUint16(b[32:34], uint16(h.Geometry.BlockAlign()))
	le.PutUint16(b[34:36], adpcmBitDepth)
	le.PutUint16(b[36:38], adpcmCbSize)
	le.PutUint16(b[38:40], uint16(h.Geometry.SamplesPerBlock()))

	// The fact chunk carries the true sample count, the last block may be padded.
	copy(b[40:44], "fact")
	le.PutUint32(b[44:48], factLen)
	le.PutUint32(b[48:52], h.NumSamples)

	copy(b[52:56], "data")
	le.PutUint32(b[56:60], dataLen)
	return b, nil
}

// WriteTo writes the encoded header to w.
func (h ADPCMHeader) WriteTo(w io.Writer) (int64, error) {
	b, _ := h.MarshalBinary()
	n, err := w.Write(b)
	return int64(n), err
}

// ParseADPCMHeader decodes a header produced by ADPCMHeader.MarshalBinary.
// The geometry block count is derived from the data length.
func ParseADPCMHeader(b []byte) (ADPCMHeader, error) {
	if len(b) < ADPCMHeaderSize {
		return ADPCMHeader{}, errShortHeader
	}
	le := binary.LittleEndian
	if !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) ||
		!bytes.Equal(b[40:44], []byte("fact")) || !bytes.Equal(b[52:56], []byte("data")) {
		return ADPCMHeader{}, errors.Wrap(errInvalidFormat, "unexpected chunk layout")
	}
	if le.Uint16(b[20:22]) != ADPCMFormat {
		return ADPCMHeader{}, errors.Wrapf(errInvalidFormat, "format tag %#x", le.Uint16(b[20:22]))
	}

	align := int(le.Uint16(b[32:34]))
	if align < BlockHeaderSize {
		return ADPCMHeader{}, errors.Wrapf(ErrInvalidBlockSize, "block align %d", align)
	}
	dataLen := int(le.Uint32(b[56:60]))
	return ADPCMHeader{
		SampleRate: le.Uint32(b[24:28]),
		NumSamples: le.Uint32(b[48:52]),
		Geometry: Geometry{
			Payload:   align - BlockHeaderSize,
			Blocks:    dataLen / align,
			DataBytes: dataLen,
		},
	}, nil
}
