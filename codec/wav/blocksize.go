/*
NAME
  blocksize.go

DESCRIPTION
  blocksize.go provides selection of the IMA ADPCM wav block size, either
  directly or by searching for the size that gives the smallest file.

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
	"fmt"
	"math"

	"github.com/ausocean/aud2wav/codec/adpcm"
	"github.com/pkg/errors"
)

// Block size limits. Block sizes include the 4 byte block header, payloads
// do not.
const (
	BlockHeaderSize  = adpcm.BlockHeaderSize
	MaxPayload       = math.MaxInt16
	MinBlockSize     = BlockHeaderSize
	MaxBlockSize     = MaxPayload + BlockHeaderSize
	DefaultBlockSize = 512 // Most compatible.

	// Windows ACM codecs accept block sizes in [8, 2760] that are a multiple of 4.
	acmMinBlockSize = 8
	acmMaxBlockSize = 2760
	acmAlign        = 4
)

// Block size values with special meaning on the command line.
const (
	BlockSizeSmallestACM = -1
	BlockSizeSmallestAny = -2
)

// ErrInvalidBlockSize is returned for block sizes outside the valid range.
var ErrInvalidBlockSize = errors.New("invalid block size")

// PolicyKind is the way a block size is chosen.
type PolicyKind int

const (
	Fixed       PolicyKind = iota // Use the given payload size.
	SmallestACM                   // Smallest file among ACM compatible sizes.
	SmallestAny                   // Smallest file among all valid sizes.
)

// Policy determines how ChooseGeometry selects the block payload size.
type Policy struct {
	Kind    PolicyKind
	Payload int // Payload bytes per block, used when Kind is Fixed.
}

// FixedPayload returns a Policy using payload bytes per block.
func FixedPayload(payload int) Policy { return Policy{Kind: Fixed, Payload: payload} }

func (p Policy) String() string {
	switch p.Kind {
	case Fixed:
		return fmt.Sprintf("fixed %d (4 + %d)", p.Payload+BlockHeaderSize, p.Payload)
	case SmallestACM:
		return "smallest ACM compatible"
	case SmallestAny:
		return "smallest"
	default:
		return fmt.Sprintf("PolicyKind(%d)", int(p.Kind))
	}
}

// ParseBlockSize maps a block size (header included) or one of the special
// values BlockSizeSmallestACM and BlockSizeSmallestAny to a Policy.
func ParseBlockSize(n int) (Policy, error) {
	switch {
	case n == BlockSizeSmallestACM:
		return Policy{Kind: SmallestACM}, nil
	case n == BlockSizeSmallestAny:
		return Policy{Kind: SmallestAny}, nil
	case n >= MinBlockSize && n <= MaxBlockSize:
		return FixedPayload(n - BlockHeaderSize), nil
	default:
		return Policy{}, errors.Wrapf(ErrInvalidBlockSize, "%d", n)
	}
}

// Geometry describes how samples are laid out in IMA ADPCM blocks.
type Geometry struct {
	Payload   int // Payload bytes per block, excluding the block header.
	Blocks    int // Number of blocks, the last may be partial.
	DataBytes int // Total bytes of the data chunk.
}

// SamplesPerBlock returns the samples held by one full block: one in the
// header and two per payload byte.
func (g Geometry) SamplesPerBlock() int { return samplesPerBlock(g.Payload) }

// BlockAlign returns the size of one block including its header.
func (g Geometry) BlockAlign() int { return g.Payload + BlockHeaderSize }

// NewGeometry returns the geometry for numSamples samples in blocks of
// payload bytes.
func NewGeometry(numSamples, payload int) Geometry {
	blocks := blocksFor(numSamples, payload)
	return Geometry{Payload: payload, Blocks: blocks, DataBytes: blocks * (payload + BlockHeaderSize)}
}

// ChooseGeometry returns the block geometry for numSamples samples under
// policy p. Searches keep the first smallest candidate in ascending payload
// order.
func ChooseGeometry(numSamples int, p Policy) (Geometry, error) {
	if numSamples < 0 {
		return Geometry{}, fmt.Errorf("negative sample count: %d", numSamples)
	}

	switch p.Kind {
	case Fixed:
		if p.Payload < 0 || p.Payload > MaxPayload {
			return Geometry{}, errors.Wrapf(ErrInvalidBlockSize, "payload %d", p.Payload)
		}
		return NewGeometry(numSamples, p.Payload), nil
	case SmallestACM:
		return smallest(numSamples, acmMinBlockSize-BlockHeaderSize, acmMaxBlockSize-BlockHeaderSize, acmAlign), nil
	case SmallestAny:
		return smallest(numSamples, 0, MaxPayload, 1), nil
	default:
		return Geometry{}, fmt.Errorf("unknown block size policy: %v", p)
	}
}

// smallest searches payloads from lo to hi inclusive in steps of step for the
// smallest data chunk.
func smallest(numSamples, lo, hi, step int) Geometry {
	best := Geometry{DataBytes: math.MaxInt}
	for p := lo; p <= hi; p += step {
		g := NewGeometry(numSamples, p)
		if g.DataBytes < best.DataBytes {
			best = g
		}
	}
	return best
}

func samplesPerBlock(payload int) int { return payload*2 + 1 }

// blocksFor returns the number of blocks of payload bytes needed to hold
// numSamples samples.
func blocksFor(numSamples, payload int) int {
	spb := samplesPerBlock(payload)
	return (numSamples + spb - 1) / spb
}
