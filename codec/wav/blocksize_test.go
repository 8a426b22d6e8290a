/*
NAME
  blocksize_test.go

DESCRIPTION
  blocksize_test.go contains tests for block size selection.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wav

import (
	"errors"
	"testing"
)

func TestChooseGeometry(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		policy  Policy
		want    Geometry
		wantErr error
	}{
		{name: "no samples", samples: 0, policy: FixedPayload(508), want: Geometry{Payload: 508}},
		{name: "one sample", samples: 1, policy: FixedPayload(508), want: Geometry{Payload: 508, Blocks: 1, DataBytes: 512}},
		{name: "one sample empty payload", samples: 1, policy: FixedPayload(0), want: Geometry{Payload: 0, Blocks: 1, DataBytes: 4}},
		{name: "partial block", samples: 500, policy: FixedPayload(508), want: Geometry{Payload: 508, Blocks: 1, DataBytes: 512}},
		{name: "exact blocks", samples: 2034, policy: FixedPayload(508), want: Geometry{Payload: 508, Blocks: 2, DataBytes: 1024}},
		{name: "one over", samples: 2035, policy: FixedPayload(508), want: Geometry{Payload: 508, Blocks: 3, DataBytes: 1536}},
		{name: "negative payload", samples: 10, policy: FixedPayload(-1), wantErr: ErrInvalidBlockSize},
		{name: "payload too big", samples: 10, policy: FixedPayload(MaxPayload + 1), wantErr: ErrInvalidBlockSize},

		// With 500 samples a single block of payload 250 (501 samples) is optimal;
		// 250 is not ACM aligned so the ACM search settles on 252.
		{name: "smallest any", samples: 500, policy: Policy{Kind: SmallestAny}, want: Geometry{Payload: 250, Blocks: 1, DataBytes: 254}},
		{name: "smallest acm", samples: 500, policy: Policy{Kind: SmallestACM}, want: Geometry{Payload: 252, Blocks: 1, DataBytes: 256}},

		// Every candidate gives an empty data chunk so the first one wins.
		{name: "smallest any no samples", samples: 0, policy: Policy{Kind: SmallestAny}, want: Geometry{Payload: 0}},
		{name: "smallest acm no samples", samples: 0, policy: Policy{Kind: SmallestACM}, want: Geometry{Payload: 4}},

		// One sample fits any block; the smallest block is the header alone.
		{name: "smallest any one sample", samples: 1, policy: Policy{Kind: SmallestAny}, want: Geometry{Payload: 0, Blocks: 1, DataBytes: 4}},
		{name: "smallest acm one sample", samples: 1, policy: Policy{Kind: SmallestACM}, want: Geometry{Payload: 4, Blocks: 1, DataBytes: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChooseGeometry(tt.samples, tt.policy)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ChooseGeometry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ChooseGeometry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestSmallestIsMinimal checks the search results against every candidate
// and that ties resolve to the smallest payload.
func TestSmallestIsMinimal(t *testing.T) {
	for _, n := range []int{2, 17, 1000, 44100, 123457} {
		got, err := ChooseGeometry(n, Policy{Kind: SmallestAny})
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		for p := 0; p <= MaxPayload; p++ {
			g := NewGeometry(n, p)
			if g.DataBytes < got.DataBytes || (g.DataBytes == got.DataBytes && p < got.Payload) {
				t.Fatalf("samples %d: payload %d gives %d bytes, search chose payload %d with %d bytes",
					n, p, g.DataBytes, got.Payload, got.DataBytes)
			}
		}

		acm, err := ChooseGeometry(n, Policy{Kind: SmallestACM})
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		if align := acm.BlockAlign(); align%acmAlign != 0 || align < acmMinBlockSize || align > acmMaxBlockSize {
			t.Errorf("samples %d: ACM block size %d not compatible", n, align)
		}
		if acm.DataBytes < got.DataBytes {
			t.Errorf("samples %d: constrained search beat unconstrained search", n)
		}
	}
}

// TestGeometryCoversSamples checks that blocks always cover the samples and
// that one fewer block never would.
func TestGeometryCoversSamples(t *testing.T) {
	for _, n := range []int{0, 1, 2, 1016, 1017, 1018, 99999} {
		for _, p := range []int{0, 1, 4, 252, 508, 2756, MaxPayload} {
			g := NewGeometry(n, p)
			if g.Blocks*g.SamplesPerBlock() < n {
				t.Errorf("samples %d payload %d: %d blocks do not cover samples", n, p, g.Blocks)
			}
			if g.Blocks > 0 && (g.Blocks-1)*g.SamplesPerBlock() >= n {
				t.Errorf("samples %d payload %d: %d blocks is more than needed", n, p, g.Blocks)
			}
		}
	}
}

func TestParseBlockSize(t *testing.T) {
	tests := []struct {
		in      int
		want    Policy
		wantErr bool
	}{
		{in: DefaultBlockSize, want: FixedPayload(508)},
		{in: 4, want: FixedPayload(0)},
		{in: MaxBlockSize, want: FixedPayload(MaxPayload)},
		{in: -1, want: Policy{Kind: SmallestACM}},
		{in: -2, want: Policy{Kind: SmallestAny}},
		{in: 3, wantErr: true},
		{in: MaxBlockSize + 1, wantErr: true},
		{in: -3, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBlockSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBlockSize(%d) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseBlockSize(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
