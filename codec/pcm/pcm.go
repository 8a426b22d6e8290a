/*
NAME
  pcm.go

DESCRIPTION
  pcm.go contains functions for processing pcm.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pcm provides functions for processing and converting pcm audio.
package pcm

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

// SampleFormat is the format that a PCM Buffer's samples can be in.
type SampleFormat int

// Used to represent an unknown format.
const (
	Unknown SampleFormat = -1
)

// Sample formats that we use.
const (
	S16_LE SampleFormat = iota
)

// BufferFormat contains the format for a PCM Buffer.
type BufferFormat struct {
	SFormat  SampleFormat
	Rate     uint
	Channels uint
}

// Buffer contains a buffer of PCM data and the format that it is in.
type Buffer struct {
	Format BufferFormat
	Data   []byte
}

// DataSize returns the size in bytes of n samples of the given channel
// count and bit depth.
func DataSize(n int, channels, bitDepth uint) int {
	return n * int(channels) * int(bitDepth/8)
}

// FromSamples returns a mono S16_LE Buffer holding samples at the given rate.
func FromSamples(samples []int16, rate uint) Buffer {
	data := make([]byte, DataSize(len(samples), 1, 16))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return Buffer{
		Format: BufferFormat{SFormat: S16_LE, Rate: rate, Channels: 1},
		Data:   data,
	}
}

// Samples returns the samples of a mono S16_LE Buffer.
func Samples(b Buffer) ([]int16, error) {
	if b.Format.SFormat != S16_LE || b.Format.Channels != 1 {
		return nil, fmt.Errorf("unhandled buffer format: %v with %d channels", b.Format.SFormat, b.Format.Channels)
	}
	s := make([]int16, len(b.Data)/2)
	for i := range s {
		s[i] = int16(binary.LittleEndian.Uint16(b.Data[2*i:]))
	}
	return s, nil
}

// FromIntBuffer converts a 16-bit audio.IntBuffer to samples. Multichannel
// buffers are reduced to their first channel. A zero SourceBitDepth is taken
// to be 16.
func FromIntBuffer(ib *audio.IntBuffer) ([]int16, error) {
	if ib == nil || ib.Format == nil {
		return nil, fmt.Errorf("buffer has no format")
	}
	if ib.SourceBitDepth != 0 && ib.SourceBitDepth != 16 {
		return nil, fmt.Errorf("unhandled bit depth: %d", ib.SourceBitDepth)
	}
	chans := ib.Format.NumChannels
	if chans < 1 {
		return nil, fmt.Errorf("invalid number of channels: %d", chans)
	}
	s := make([]int16, 0, len(ib.Data)/chans)
	for i := 0; i < len(ib.Data); i += chans {
		v := ib.Data[i]
		if v > math.MaxInt16 || v < math.MinInt16 {
			return nil, fmt.Errorf("sample %d out of 16-bit range: %d", i, v)
		}
		s = append(s, int16(v))
	}
	return s, nil
}

// String returns the string representation of a SampleFormat.
func (f SampleFormat) String() string {
	switch f {
	case S16_LE:
		return "S16_LE"
	default:
		return "Unknown"
	}
}
