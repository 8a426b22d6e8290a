/*
NAME
  encode.go

DESCRIPTION
  encode.go provides encoding of PCM wav files to AUD.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ausocean/aud2wav/codec/pcm"
	"github.com/ausocean/aud2wav/container/aud"
	"github.com/ausocean/utils/logging"
	"github.com/go-audio/wav"
)

// audName returns the AUD output path for the wav file at path in.
func audName(in string) string {
	if ext := filepath.Ext(in); strings.EqualFold(ext, ".wav") {
		return strings.TrimSuffix(in, ext) + ".aud"
	}
	return in + ".aud"
}

// encodeFile encodes the PCM wav file at path in to a new format AUD file at
// out, or at a path derived from in if out is empty.
func encodeFile(in, out string, log logging.Logger) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("could not open input: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return errors.New("not a valid wav file")
	}
	if d.WavAudioFormat != 1 || d.BitDepth != 16 {
		return fmt.Errorf("only 16-bit PCM wav is supported, got format %d with %d bits", d.WavAudioFormat, d.BitDepth)
	}
	if d.SampleRate == 0 || d.SampleRate > math.MaxUint16 {
		return fmt.Errorf("sample rate %d does not fit an AUD header", d.SampleRate)
	}
	if d.NumChans != 1 {
		log.Warning("using first channel only", "path", in, "channels", d.NumChans)
	}

	ib, err := d.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("could not read PCM: %w", err)
	}
	samples, err := pcm.FromIntBuffer(ib)
	if err != nil {
		return fmt.Errorf("could not convert PCM: %w", err)
	}

	if out == "" {
		out = audName(in)
	}
	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("could not create output: %w", err)
	}
	w := bufio.NewWriter(dst)
	n, err := aud.Encode(w, aud.FormatNew, uint16(d.SampleRate), samples, aud.DefaultBlockPayload)
	if err == nil {
		err = w.Flush()
	}
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("could not write AUD: %w", err)
	}
	log.Info("wrote AUD", "path", out, "samples", len(samples), "bytes", n)
	return nil
}
