/*
NAME
  aud_test.go

DESCRIPTION
  aud_test.go provides testing for AUD header detection, parsing and scanning.

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
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// payloads returns blocks of the given sizes filled with a counting pattern.
func payloads(sizes ...int) [][]byte {
	var out [][]byte
	var c byte
	for _, s := range sizes {
		p := make([]byte, s)
		for i := range p {
			p[i] = c
			c++
		}
		out = append(out, p)
	}
	return out
}

// build returns an AUD file of format f with blocks of the given sizes.
func build(t *testing.T, f Format, sizes ...int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := WriteBlocks(&buf, f, 22050, payloads(sizes...)); err != nil {
		t.Fatalf("could not write AUD: %v", err)
	}
	return buf.Bytes()
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		file []byte
		want Header
	}{
		{
			name: "new format three blocks",
			file: build(t, FormatNew, 100, 100, 50),
			want: Header{
				Format:           FormatNew,
				SampleRate:       22050,
				EncSize:          274,
				DecSize:          1000,
				Flags:            Flag16Bit,
				Codec:            CodecIMA,
				FileSize:         286,
				FirstBlockOffset: NewHeaderSize,
				FirstBlockSize:   100,
				LastBlockSize:    50,
				Blocks:           3,
				ADPCMBytes:       250,
				NumSamples:       500,
			},
		},
		{
			name: "old format",
			file: build(t, FormatOld, 40, 7),
			want: Header{
				Format:           FormatOld,
				SampleRate:       22050,
				EncSize:          63,
				Flags:            Flag16Bit,
				Codec:            CodecIMA,
				FileSize:         71,
				FirstBlockOffset: OldHeaderSize,
				FirstBlockSize:   40,
				LastBlockSize:    7,
				Blocks:           2,
				ADPCMBytes:       47,
				NumSamples:       94,
			},
		},
		{
			name: "empty block",
			file: build(t, FormatNew, 0),
			want: Header{
				Format:           FormatNew,
				SampleRate:       22050,
				EncSize:          8,
				Flags:            Flag16Bit,
				Codec:            CodecIMA,
				FileSize:         20,
				FirstBlockOffset: NewHeaderSize,
				Blocks:           1,
			},
		},
		{
			name: "short trailing bytes",
			file: append(build(t, FormatNew, 10), 0xaf, 0xde, 0),
			want: Header{
				Format:           FormatNew,
				SampleRate:       22050,
				EncSize:          18,
				DecSize:          40,
				Flags:            Flag16Bit,
				Codec:            CodecIMA,
				FileSize:         33,
				FirstBlockOffset: NewHeaderSize,
				FirstBlockSize:   10,
				LastBlockSize:    10,
				Blocks:           1,
				ADPCMBytes:       10,
				NumSamples:       20,
				TrailingBytes:    3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(bytes.NewReader(tt.file), int64(len(tt.file)))
			if err != nil {
				t.Fatalf("did not expect error: %v", err)
			}
			if !cmp.Equal(got, tt.want) {
				t.Errorf("headers not equal\n%s", cmp.Diff(tt.want, got))
			}
		})
	}
}

func TestOldFormatHasNoDecodedDiff(t *testing.T) {
	file := build(t, FormatOld, 16)
	h, err := Open(bytes.NewReader(file), int64(len(file)))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if _, ok := h.DecodedDiff(); ok {
		t.Error("old format header reported a decoded size difference")
	}
	if h.DecSize != 0 {
		t.Errorf("DecSize = %d, want 0", h.DecSize)
	}

	file = build(t, FormatNew, 16)
	h, err = Open(bytes.NewReader(file), int64(len(file)))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if diff, ok := h.DecodedDiff(); !ok || diff != 0 {
		t.Errorf("DecodedDiff() = %d, %v, want 0, true", diff, ok)
	}
	if h.EncodedDiff() != 0 {
		t.Errorf("EncodedDiff() = %d, want 0", h.EncodedDiff())
	}
}

func TestOpenErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 4096)
	rng.Read(random)

	stereo := build(t, FormatNew, 10)
	stereo[10] = Flag16Bit | FlagStereo

	eightBit := build(t, FormatOld, 10)
	eightBit[6] = 0

	westwood := build(t, FormatNew, 10)
	westwood[11] = CodecWestwood

	corrupt := build(t, FormatNew, 10, 10, 10)
	corrupt[NewHeaderSize+2*(BlockHeaderSize+10)+4] = 0xad // Third block marker.

	nonZero := build(t, FormatNew, 10, 10)
	nonZero[NewHeaderSize+BlockHeaderSize+10+6] = 1 // Second block zero field.

	truncated := build(t, FormatNew, 10, 100)
	truncated = truncated[:len(truncated)-1]

	tests := []struct {
		name       string
		file       []byte
		wantErr    error
		wantBlocks int
	}{
		{name: "random bytes", file: random, wantErr: ErrUnknownFormat},
		{name: "empty", file: nil, wantErr: ErrUnknownFormat},
		{name: "stereo", file: stereo, wantErr: ErrUnsupportedStream},
		{name: "8-bit", file: eightBit, wantErr: ErrUnsupportedStream},
		{name: "westwood codec", file: westwood, wantErr: ErrUnsupportedStream},
		{name: "corrupt marker", file: corrupt, wantErr: ErrCorruptBlockHeader, wantBlocks: 2},
		{name: "corrupt zero", file: nonZero, wantErr: ErrCorruptBlockHeader, wantBlocks: 1},
		{name: "truncated payload", file: truncated, wantErr: ErrTruncatedStream, wantBlocks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Open(bytes.NewReader(tt.file), int64(len(tt.file)))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Open() error = %v, want %v", err, tt.wantErr)
			}
			if h.Blocks != tt.wantBlocks {
				t.Errorf("partial result has %d blocks, want %d", h.Blocks, tt.wantBlocks)
			}
			if h.NumSamples != h.ADPCMBytes*2 {
				t.Errorf("NumSamples = %d, want %d", h.NumSamples, h.ADPCMBytes*2)
			}
		})
	}
}

// TestDetectPrefersNew checks that a file valid under both interpretations is
// detected as the new format.
func TestDetectPrefersNew(t *testing.T) {
	file := build(t, FormatNew, 4)
	// Plant a valid block header at the old format offset as well.
	binary.LittleEndian.PutUint16(file[OldHeaderSize+4:], BlockMarker)
	binary.LittleEndian.PutUint16(file[OldHeaderSize+6:], 0)

	f, err := DetectFormat(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if f != FormatNew {
		t.Errorf("DetectFormat() = %v, want %v", f, FormatNew)
	}
}

func TestBlockReader(t *testing.T) {
	want := payloads(100, 100, 50)
	var buf bytes.Buffer
	if _, err := WriteBlocks(&buf, FormatNew, 22050, want); err != nil {
		t.Fatalf("could not write AUD: %v", err)
	}
	r := bytes.NewReader(buf.Bytes())
	h, err := Open(r, r.Size())
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	br := NewBlockReader(Blocks(r, h), h)
	for i, w := range want {
		got, err := br.Next()
		if err != nil {
			t.Fatalf("block %d: did not expect error: %v", i, err)
		}
		if !bytes.Equal(got, w) {
			t.Errorf("block %d: payload mismatch", i)
		}
	}
	if _, err := br.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last block, got %v", err)
	}

	// A reader over a stream shorter than the scan says gives a truncation error.
	short := buf.Bytes()[:buf.Len()-20]
	br = NewBlockReader(bytes.NewReader(short[NewHeaderSize:]), h)
	var last error
	for last == nil {
		_, last = br.Next()
	}
	if !errors.Is(last, ErrTruncatedStream) {
		t.Errorf("expected ErrTruncatedStream, got %v", last)
	}
}

func TestEncode(t *testing.T) {
	samples := make([]int16, 1001)
	for i := range samples {
		samples[i] = int16(i * 13)
	}
	var buf bytes.Buffer
	if _, err := Encode(&buf, FormatNew, 11025, samples, 100); err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	h, err := Open(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if h.Blocks != 6 || h.ADPCMBytes != 501 || h.LastBlockSize != 1 {
		t.Errorf("unexpected scan: %d blocks, %d bytes, last block %d", h.Blocks, h.ADPCMBytes, h.LastBlockSize)
	}
	if h.Duration() != 1002*time.Second/11025 {
		t.Errorf("Duration() = %v", h.Duration())
	}
}
