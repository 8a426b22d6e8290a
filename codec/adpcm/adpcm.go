/*
NAME
  adpcm.go

DESCRIPTION
  adpcm.go provides a stateless IMA ADPCM nibble decoder with four
  interchangeable algorithms, and the matching nibble encoder.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package adpcm provides functions to transcode between PCM and IMA ADPCM.
//
// Decoding is expressed as a pure function of the decoder state and one
// 4-bit nibble so that callers can snapshot, copy and restore the state
// freely. The state is never reset by this package.
package adpcm

import (
	"fmt"
	"math"
	"strings"
)

const (
	numSteps = 89           // Number of entries in the step table.
	MaxIndex = numSteps - 1 // Largest valid step index.
)

// Table of index changes, indexed by the nibble magnitude (sign bit removed).
var indexTable = [8]int8{-1, -1, -1, -1, 2, 4, 6, 8}

// Quantize step size table.
var stepTable = [numSteps]int32{
	7, 8, 9, 10, 11, 12, 13, 14,
	16, 17, 19, 21, 23, 25, 28, 31,
	34, 37, 41, 45, 50, 55, 60, 66,
	73, 80, 88, 97, 107, 118, 130, 143,
	157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658,
	724, 796, 876, 963, 1060, 1166, 1282, 1411,
	1552, 1707, 1878, 2066, 2272, 2499, 2749, 3024,
	3327, 3660, 4026, 4428, 4871, 5358, 5894, 6484,
	7132, 7845, 8630, 9493, 10442, 11487, 12635, 13899,
	15289, 16818, 18500, 20350, 22385, 24623, 27086, 29794,
	32767,
}

// Algorithm selects how the sample delta is computed from a nibble.
type Algorithm int

// The available decoding algorithms. AlgTable is the reference and AlgExact
// produces identical output. AlgFast and AlgFastest are approximations whose
// error accumulates from sample to sample.
const (
	AlgTable   Algorithm = iota // Large precomputed lookup tables.
	AlgExact                    // Step table with per-bit accumulation.
	AlgFast                     // Single multiply, shift and add.
	AlgFastest                  // Single multiply and shift.
)

// Algorithms lists every supported algorithm in ascending order.
var Algorithms = []Algorithm{AlgTable, AlgExact, AlgFast, AlgFastest}

var algNames = [...]string{"table", "exact", "fast", "fastest"}

// Valid returns true if a is a known algorithm.
func (a Algorithm) Valid() bool { return a >= AlgTable && a <= AlgFastest }

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return fmt.Sprintf("algo%d (%s)", int(a), algNames[a])
}

// ParseAlgorithm parses an algorithm from its number ("0".."3") or its name.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "algo")
	for i, n := range algNames {
		if s == n || s == fmt.Sprint(i) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ADPCM algorithm: %q", s)
}

// State is the IMA ADPCM decoder state carried from one nibble to the next.
// The zero value is the initial state of a stream.
type State struct {
	Sample int16 // Last decoded sample.
	Index  uint8 // Index into the step table, in [0, MaxIndex].
}

// Decode decodes a single nibble (the low 4 bits of nibble) from state s
// using algorithm alg, and returns the decoded sample and the next state.
// Unknown algorithms decode as AlgExact.
func Decode(s State, nibble byte, alg Algorithm) (int16, State) {
	nibble &= 0x0f
	idx := int(s.Index)
	if idx > MaxIndex {
		idx = MaxIndex
	}

	var diff int32
	if alg == AlgTable {
		key := idx<<4 | int(nibble)
		diff = deltaTable[key]
		s.Index = nextIndexTable[key]
	} else {
		mag := nibble & 7
		step := stepTable[idx]
		switch alg {
		case AlgFast:
			diff = (int32(mag)*step)>>2 + step>>3
		case AlgFastest:
			diff = ((int32(mag)*2 + 1) * step) >> 3
		default:
			if mag&4 != 0 {
				diff += step
			}
			step >>= 1
			if mag&2 != 0 {
				diff += step
			}
			step >>= 1
			if mag&1 != 0 {
				diff += step
			}
			step >>= 1
			diff += step
		}

		// Account for sign bit.
		if nibble&8 != 0 {
			diff = -diff
		}
		s.Index = clampIndex(idx + int(indexTable[mag]))
	}

	s.Sample = clamp16(int32(s.Sample) + diff)
	return s.Sample, s
}

// DecodeBytes decodes every nibble of b, low nibble first, appending the
// samples to dst. It returns the extended slice and the state after the
// last nibble.
func DecodeBytes(dst []int16, s State, b []byte, alg Algorithm) ([]int16, State) {
	var v int16
	for _, c := range b {
		v, s = Decode(s, c&0x0f, alg)
		dst = append(dst, v)
		v, s = Decode(s, c>>4, alg)
		dst = append(dst, v)
	}
	return dst, s
}

// Encode takes a single 16 bit PCM sample and returns a byte of which the
// last 4 bits are an encoded ADPCM nibble, along with the state a decoder
// will be in after decoding that nibble.
func Encode(s State, sample int16) (byte, State) {
	// Find difference between the sample and the previous estimation.
	delta := int32(sample) - int32(s.Sample)

	// Create and set sign bit for nibble and find absolute value of difference.
	var nib byte
	if delta < 0 {
		nib = 8
		delta = -delta
	}

	step := stepTable[clampIndex(int(s.Index))]
	var mask byte = 4
	for i := 0; i < 3; i++ {
		if delta >= step {
			nib |= mask
			delta -= step
		}
		mask >>= 1
		step >>= 1
	}

	// Track the decoder exactly so that encoder and decoder never drift.
	_, s = Decode(s, nib, AlgExact)
	return nib, s
}

// EncodeBytes encodes samples into packed nibbles, low nibble first. An odd
// trailing sample leaves the high nibble of the last byte zero.
func EncodeBytes(dst []byte, s State, samples []int16) ([]byte, State) {
	var lo, hi byte
	for i := 0; i < len(samples); i += 2 {
		lo, s = Encode(s, samples[i])
		hi = 0
		if i+1 < len(samples) {
			hi, s = Encode(s, samples[i+1])
		}
		dst = append(dst, hi<<4|lo)
	}
	return dst, s
}

// clampIndex limits a step index to [0, MaxIndex].
func clampIndex(i int) uint8 {
	switch {
	case i < 0:
		return 0
	case i > MaxIndex:
		return MaxIndex
	default:
		return uint8(i)
	}
}

// clamp16 caps at max/min int16 instead of overflowing.
func clamp16(c int32) int16 {
	switch {
	case c < math.MinInt16:
		return math.MinInt16
	case c > math.MaxInt16:
		return math.MaxInt16
	default:
		return int16(c)
	}
}
