/*
NAME
  pcm_test.go

DESCRIPTION
  pcm_test.go contains functions for testing the pcm package.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pcm

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-audio/audio"
	"github.com/google/go-cmp/cmp"
)

// TestFromSamples checks the byte layout of a buffer built from samples.
func TestFromSamples(t *testing.T) {
	in := []int16{0, 1, -1, math.MaxInt16, math.MinInt16}
	b := FromSamples(in, 22050)

	want := []byte{0, 0, 1, 0, 0xff, 0xff, 0xff, 0x7f, 0x00, 0x80}
	if !bytes.Equal(b.Data, want) {
		t.Errorf("unexpected data\ngot:  %v\nwant: %v", b.Data, want)
	}
	if b.Format != (BufferFormat{SFormat: S16_LE, Rate: 22050, Channels: 1}) {
		t.Errorf("unexpected format: %+v", b.Format)
	}

	got, err := Samples(b)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if !cmp.Equal(got, in) {
		t.Errorf("samples differ\n%s", cmp.Diff(in, got))
	}

	b.Format.Channels = 2
	if _, err := Samples(b); err == nil {
		t.Error("expected error for stereo buffer")
	}
}

func TestFromIntBuffer(t *testing.T) {
	tests := []struct {
		name    string
		buf     *audio.IntBuffer
		want    []int16
		wantErr bool
	}{
		{
			name: "mono",
			buf:  &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}, Data: []int{5, -5, 32767}, SourceBitDepth: 16},
			want: []int16{5, -5, 32767},
		},
		{
			name: "stereo takes first channel",
			buf:  &audio.IntBuffer{Format: &audio.Format{NumChannels: 2, SampleRate: 8000}, Data: []int{1, 100, 2, 200, 3, 300}, SourceBitDepth: 16},
			want: []int16{1, 2, 3},
		},
		{
			name:    "24-bit",
			buf:     &audio.IntBuffer{Format: &audio.Format{NumChannels: 1}, Data: []int{1}, SourceBitDepth: 24},
			wantErr: true,
		},
		{
			name:    "out of range",
			buf:     &audio.IntBuffer{Format: &audio.Format{NumChannels: 1}, Data: []int{40000}},
			wantErr: true,
		},
		{
			name:    "no format",
			buf:     &audio.IntBuffer{Data: []int{1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromIntBuffer(tt.buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromIntBuffer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !cmp.Equal(got, tt.want) {
				t.Errorf("samples differ\n%s", cmp.Diff(tt.want, got))
			}
		})
	}
}

func TestCompare(t *testing.T) {
	const eps = 1e-9

	ref := []int16{0, 10, 20, 30}
	d, err := Compare(ref, ref)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if !d.Exact() || d.RMS != 0 {
		t.Errorf("identical slices gave %+v", d)
	}

	got := []int16{2, 10, 16, 30}
	d, err = Compare(ref, got)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	// Differences are 2, 0, -4, 0.
	if d.Differ != 2 || d.MaxAbs != 4 {
		t.Errorf("got %d differing with max %d, want 2 and 4", d.Differ, d.MaxAbs)
	}
	if math.Abs(d.Mean-(-0.5)) > eps {
		t.Errorf("Mean = %v, want -0.5", d.Mean)
	}
	if math.Abs(d.RMS-math.Sqrt(5)) > eps {
		t.Errorf("RMS = %v, want %v", d.RMS, math.Sqrt(5))
	}
	// Unbiased: sum of squared deviations from the mean is 19, over 3.
	if math.Abs(d.StdDev-math.Sqrt(19.0/3)) > eps {
		t.Errorf("StdDev = %v, want %v", d.StdDev, math.Sqrt(19.0/3))
	}

	if _, err := Compare(ref, got[:3]); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
