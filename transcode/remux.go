/*
NAME
  remux.go

DESCRIPTION
  remux.go provides re-segmentation of a continuous AUD IMA ADPCM stream into
  independently decodable wav IMA ADPCM blocks, without decoding to PCM.

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

package transcode

import (
	"errors"
	"fmt"
	"io"

	"github.com/ausocean/aud2wav/codec/adpcm"
	"github.com/ausocean/aud2wav/codec/wav"
	"github.com/ausocean/aud2wav/container/aud"
)

// ErrWrite is returned when writing to an output fails or is short.
var ErrWrite = errors.New("could not write output")

// nibbleReader yields the nibbles of an AUD block stream, low nibble first.
type nibbleReader struct {
	src *aud.BlockReader
	buf []byte
	pos int // Index of the next nibble in buf.
}

// next returns the next nibble, or io.EOF once every block has been read.
func (nr *nibbleReader) next() (byte, error) {
	for nr.pos == 2*len(nr.buf) {
		b, err := nr.src.Next()
		if err != nil {
			return 0, err
		}
		nr.buf, nr.pos = b, 0
	}
	c := (nr.buf[nr.pos/2] >> (4 * uint(nr.pos&1))) & 0x0f
	nr.pos++
	return c, nil
}

// Remuxer converts the nibble stream of an AUD file into wav IMA ADPCM
// blocks of a fixed geometry. The decoder state is carried across block
// boundaries, only the framing restarts. A Remuxer cannot be rewound.
type Remuxer struct {
	in      nibbleReader
	g       wav.Geometry
	state   adpcm.State
	emitted int
	payload []byte
}

// NewRemuxer returns a Remuxer reading from src and producing g.Blocks blocks.
func NewRemuxer(src *aud.BlockReader, g wav.Geometry) *Remuxer {
	return &Remuxer{
		in:      nibbleReader{src: src},
		g:       g,
		payload: make([]byte, g.Payload),
	}
}

// Next returns the next block. The first nibble of each block is decoded into
// the block header state and the next 2*Payload nibbles are copied into the
// payload; the final block is padded with zeros. The returned payload is only
// valid until the following call. io.EOF is returned after the last block.
func (r *Remuxer) Next() (wav.Block, error) {
	if r.emitted >= r.g.Blocks {
		return wav.Block{}, io.EOF
	}

	c, err := r.in.next()
	if err == io.EOF {
		return wav.Block{}, fmt.Errorf("%w: stream ended before block %d", aud.ErrTruncatedStream, r.emitted)
	}
	if err != nil {
		return wav.Block{}, err
	}
	_, r.state = adpcm.Decode(r.state, c, adpcm.AlgTable)
	blk := wav.Block{State: r.state, Payload: r.payload}

	clear(r.payload)
	for i := 0; i < 2*len(r.payload); i++ {
		c, err := r.in.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return wav.Block{}, err
		}
		_, r.state = adpcm.Decode(r.state, c, adpcm.AlgTable)
		r.payload[i/2] |= c << (4 * uint(i&1))
	}

	r.emitted++
	return blk, nil
}

// State returns the decoder state after the last nibble consumed.
func (r *Remuxer) State() adpcm.State { return r.state }

// Remux writes a wav IMA ADPCM file holding the stream described by h and
// read from src, in blocks of geometry g. It returns the number of bytes
// written. On error the output written so far is left in dst.
func Remux(dst io.Writer, h aud.Header, src *aud.BlockReader, g wav.Geometry) (int64, error) {
	hdr, err := wav.NewADPCMHeader(int(h.SampleRate), h.NumSamples, g)
	if err != nil {
		return 0, fmt.Errorf("could not create wav header: %w", err)
	}
	n, err := hdr.WriteTo(dst)
	if err != nil {
		return n, fmt.Errorf("%w: header: %v", ErrWrite, err)
	}

	r := NewRemuxer(src, g)
	for {
		blk, err := r.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("could not remux block %d: %w", r.emitted, err)
		}
		_n, err := blk.WriteTo(dst)
		n += _n
		if err != nil {
			return n, fmt.Errorf("%w: block %d: %v", ErrWrite, r.emitted-1, err)
		}
	}
}
