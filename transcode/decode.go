/*
NAME
  decode.go

DESCRIPTION
  decode.go provides decoding of an AUD IMA ADPCM stream to 16-bit PCM.

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package transcode

import (
	"fmt"
	"io"

	"github.com/ausocean/aud2wav/codec/adpcm"
	"github.com/ausocean/aud2wav/codec/pcm"
	"github.com/ausocean/aud2wav/codec/wav"
	"github.com/ausocean/aud2wav/container/aud"
)

// DecodeSamples decodes every block read from src with algorithm alg. The
// decoder state runs on across AUD block boundaries.
func DecodeSamples(src *aud.BlockReader, numSamples int, alg adpcm.Algorithm) ([]int16, error) {
	out := make([]int16, 0, numSamples)
	var s adpcm.State
	for {
		b, err := src.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out, s = adpcm.DecodeBytes(out, s, b, alg)
	}
}

// DecodePCM decodes the stream described by h and read from src into a mono
// S16_LE buffer.
func DecodePCM(src *aud.BlockReader, h aud.Header, alg adpcm.Algorithm) (pcm.Buffer, error) {
	samples, err := DecodeSamples(src, h.NumSamples, alg)
	if err != nil {
		return pcm.Buffer{}, fmt.Errorf("could not decode with %v: %w", alg, err)
	}
	return pcm.FromSamples(samples, uint(h.SampleRate)), nil
}

// WritePCM writes b as a wav file to dst and returns the number of bytes
// written.
func WritePCM(dst io.Writer, b pcm.Buffer) (int64, error) {
	if b.Format.SFormat != pcm.S16_LE || b.Format.Channels != 1 {
		return 0, fmt.Errorf("unhandled buffer format: %v with %d channels", b.Format.SFormat, b.Format.Channels)
	}
	hdr, err := wav.NewPCMHeader(int(b.Format.Rate), len(b.Data)/2)
	if err != nil {
		return 0, fmt.Errorf("could not create wav header: %w", err)
	}
	n, err := hdr.WriteTo(dst)
	if err != nil {
		return n, fmt.Errorf("%w: header: %v", ErrWrite, err)
	}
	_n, err := dst.Write(b.Data)
	n += int64(_n)
	if err != nil {
		return n, fmt.Errorf("%w: data: %v", ErrWrite, err)
	}
	return n, nil
}
