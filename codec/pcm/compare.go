/*
NAME
  compare.go

DESCRIPTION
  compare.go provides measurement of the difference between two decodings of
  the same audio.

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
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Deviation summarises how far a decoding strays from a reference.
type Deviation struct {
	Differ int     // Number of samples that differ.
	MaxAbs int     // Largest absolute sample difference.
	Mean   float64 // Mean signed difference.
	StdDev float64 // Standard deviation of the difference.
	RMS    float64 // Root mean square difference.
}

// Exact returns true if no sample differs.
func (d Deviation) Exact() bool { return d.Differ == 0 }

// Compare returns the deviation of got from ref. Both must hold the same
// number of samples.
func Compare(ref, got []int16) (Deviation, error) {
	if len(ref) != len(got) {
		return Deviation{}, fmt.Errorf("sample counts differ: %d and %d", len(ref), len(got))
	}
	if len(ref) == 0 {
		return Deviation{}, nil
	}

	var d Deviation
	diff := make([]float64, len(ref))
	sq := make([]float64, len(ref))
	for i := range ref {
		v := int(got[i]) - int(ref[i])
		if v != 0 {
			d.Differ++
		}
		if abs := int(math.Abs(float64(v))); abs > d.MaxAbs {
			d.MaxAbs = abs
		}
		diff[i] = float64(v)
		sq[i] = float64(v * v)
	}
	d.Mean, d.StdDev = stat.MeanStdDev(diff, nil)
	if len(ref) == 1 {
		d.StdDev = 0
	}
	d.RMS = math.Sqrt(stat.Mean(sq, nil))
	return d, nil
}
