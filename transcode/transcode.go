/*
NAME
  transcode.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package transcode provides conversion of Westwood AUD files to wav, either
// by remuxing the IMA ADPCM stream into wav blocks or by decoding to PCM.
package transcode

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ausocean/aud2wav/codec/adpcm"
	"github.com/ausocean/aud2wav/codec/pcm"
	"github.com/ausocean/aud2wav/codec/wav"
	"github.com/ausocean/aud2wav/container/aud"
	"github.com/ausocean/aud2wav/transcode/config"
)

// Output describes one file written by Run.
type Output struct {
	Path      string
	Algorithm adpcm.Algorithm
	Bytes     int64
	Geometry  wav.Geometry   // Remux only.
	Deviation *pcm.Deviation // Decode with Compare only, nil for the reference.
}

// Result holds the outcome of transcoding one input.
type Result struct {
	Header  aud.Header
	Outputs []Output
}

// Transcoder converts AUD files according to its config.
type Transcoder struct {
	cfg config.Config
}

// New returns a Transcoder using config c. c is validated, with bad fields
// replaced by defaults.
func New(c config.Config) (*Transcoder, error) {
	if c.Logger == nil {
		return nil, errors.New("config has no logger")
	}
	err := c.Validate()
	if err != nil {
		return nil, fmt.Errorf("config struct is bad: %w", err)
	}
	return &Transcoder{cfg: c}, nil
}

// Config returns a copy of the transcoder's config.
func (t *Transcoder) Config() config.Config { return t.cfg }

// OutputName returns the output path for input path in. The .aud extension,
// if any, is replaced by .wav. If multi is true the algorithm is added to the
// name so that outputs of several algorithms do not collide.
func OutputName(in string, alg adpcm.Algorithm, multi bool) string {
	base := in
	if ext := filepath.Ext(in); strings.EqualFold(ext, ".aud") {
		base = strings.TrimSuffix(in, ext)
	}
	if multi {
		return fmt.Sprintf("%s.algo%d.wav", base, int(alg))
	}
	return base + ".wav"
}

// Run transcodes the AUD file at path in. The whole input is scanned before
// any output is created; a scan failure leaves no output behind. Failures
// after that leave the partial output in place.
func (t *Transcoder) Run(in string) (Result, error) {
	log := t.cfg.Logger

	f, err := os.Open(in)
	if err != nil {
		return Result{}, fmt.Errorf("could not open input: %w", err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("could not stat input: %w", err)
	}

	h, err := aud.Open(f, fi.Size())
	res := Result{Header: h}
	switch {
	case err == nil:
	case t.cfg.Lenient && h.Blocks > 0 && (errors.Is(err, aud.ErrTruncatedStream) || errors.Is(err, aud.ErrCorruptBlockHeader)):
		log.Warning("continuing with blocks read before error", "path", in, "blocks", h.Blocks, "error", err)
	default:
		return res, err
	}
	t.logHeader(in, h)

	switch t.cfg.Mode {
	case config.ModeDecode:
		res.Outputs, err = t.decode(f, in, h)
	default:
		var out Output
		out, err = t.remux(f, in, h)
		res.Outputs = []Output{out}
	}
	return res, err
}

func (t *Transcoder) logHeader(in string, h aud.Header) {
	log := t.cfg.Logger
	log.Info("analyzed AUD file",
		"path", in,
		"format", h.Format.String(),
		"rate", h.SampleRate,
		"flags", h.FlagsString(),
		"codec", h.CodecName(),
		"encsize", h.EncSize,
		"decsize", h.DecSize,
		"blocks", h.Blocks,
		"firstblock", h.FirstBlockSize,
		"lastblock", h.LastBlockSize,
		"adpcmbytes", h.ADPCMBytes,
		"samples", h.NumSamples,
		"duration", h.Duration().String(),
	)
	if d := h.EncodedDiff(); d != 0 {
		log.Warning("encoded size differs from header", "path", in, "diff", d)
	}
	if d, ok := h.DecodedDiff(); ok && d != 0 {
		log.Warning("decoded size differs from header", "path", in, "diff", d)
	}
	if h.TrailingBytes != 0 {
		log.Warning("ignoring trailing bytes", "path", in, "bytes", h.TrailingBytes)
	}
}

func (t *Transcoder) remux(f *os.File, in string, h aud.Header) (Output, error) {
	p, err := wav.ParseBlockSize(t.cfg.BlockSize)
	if err != nil {
		return Output{}, err
	}
	g, err := wav.ChooseGeometry(h.NumSamples, p)
	if err != nil {
		return Output{}, err
	}
	t.cfg.Logger.Info("block size chosen",
		"policy", p.String(),
		"blockalign", g.BlockAlign(),
		"samplesperblock", g.SamplesPerBlock(),
		"blocks", g.Blocks,
		"databytes", g.DataBytes,
	)

	out := Output{Path: t.cfg.OutputPath, Algorithm: adpcm.AlgTable, Geometry: g}
	if out.Path == "" {
		out.Path = OutputName(in, adpcm.AlgTable, false)
	}
	out.Bytes, err = writeFile(out.Path, func(w *bufio.Writer) (int64, error) {
		return Remux(w, h, aud.NewBlockReader(aud.Blocks(f, h), h), g)
	})
	if err != nil {
		return out, err
	}
	t.cfg.Logger.Info("wrote IMA ADPCM wav", "path", out.Path, "bytes", out.Bytes)
	return out, nil
}

// decode decodes the input once per configured algorithm. Each algorithm is
// decoded in its own routine with its own reader over f.
func (t *Transcoder) decode(f *os.File, in string, h aud.Header) ([]Output, error) {
	algs := t.cfg.Algorithms
	multi := len(algs) > 1
	outs := make([]Output, len(algs))
	samples := make([][]int16, len(algs))
	errs := make([]error, len(algs))

	var wg sync.WaitGroup
	for i, alg := range algs {
		outs[i] = Output{Path: OutputName(in, alg, multi), Algorithm: alg}
		if !multi && t.cfg.OutputPath != "" {
			outs[i].Path = t.cfg.OutputPath
		}

		wg.Add(1)
		go func(i int, alg adpcm.Algorithm) {
			defer wg.Done()
			b, err := DecodePCM(aud.NewBlockReader(aud.Blocks(f, h), h), h, alg)
			if err != nil {
				errs[i] = err
				return
			}
			outs[i].Bytes, errs[i] = writeFile(outs[i].Path, func(w *bufio.Writer) (int64, error) {
				return WritePCM(w, b)
			})
			if t.cfg.Compare {
				samples[i], _ = pcm.Samples(b)
			}
		}(i, alg)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return outs, fmt.Errorf("%v: %w", algs[i], err)
		}
		t.cfg.Logger.Info("wrote PCM wav", "path", outs[i].Path, "algorithm", algs[i].String(), "bytes", outs[i].Bytes)
	}

	if t.cfg.Compare && multi {
		t.compare(algs, samples, outs)
	}
	return outs, nil
}

// compare logs the deviation of each decoding from the reference decoding,
// which is the AlgTable output if present and the first otherwise.
func (t *Transcoder) compare(algs []adpcm.Algorithm, samples [][]int16, outs []Output) {
	ref := 0
	for i, a := range algs {
		if a == adpcm.AlgTable {
			ref = i
			break
		}
	}
	for i := range algs {
		if i == ref {
			continue
		}
		d, err := pcm.Compare(samples[ref], samples[i])
		if err != nil {
			t.cfg.Logger.Warning("could not compare decodings", "algorithm", algs[i].String(), "error", err)
			continue
		}
		outs[i].Deviation = &d
		t.cfg.Logger.Info("deviation from reference",
			"reference", algs[ref].String(),
			"algorithm", algs[i].String(),
			"differ", d.Differ,
			"maxabs", d.MaxAbs,
			"mean", d.Mean,
			"stddev", d.StdDev,
			"rms", d.RMS,
		)
	}
}

// writeFile creates the file at path and writes to it through a buffered
// writer using fn.
func writeFile(path string, fn func(*bufio.Writer) (int64, error)) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("could not create output: %w", err)
	}
	w := bufio.NewWriter(f)
	n, err := fn(w)
	if ferr := w.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("%w: %v", ErrWrite, ferr)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %v", ErrWrite, cerr)
	}
	return n, err
}
