/*
NAME
  aud.go

DESCRIPTION
  aud.go provides parsing of Westwood AUD audio files: detection of the old
  and new header variants, validation of block headers, and a scan of the
  block stream that counts blocks and samples in advance of decoding.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package aud provides functionality for reading and writing Westwood AUD
// files carrying a continuous IMA ADPCM stream.
//
// An AUD file is a small file header followed by a sequence of blocks, each
// an 8 byte block header and its encoded payload. Unlike wav IMA ADPCM, the
// decoder is never reinitialised at block boundaries.
package aud

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Header and block header sizes in bytes.
const (
	NewHeaderSize   = 12
	OldHeaderSize   = 8
	BlockHeaderSize = 8
	MaxPayload      = 0xffff
)

// Block header sentinel values.
const (
	BlockMarker = 0xdeaf
	blockZero   = 0x0000
)

// Header flag bits.
const (
	FlagStereo = 1 << 0
	Flag16Bit  = 1 << 1
)

// Codec identifiers.
const (
	CodecWestwood = 1
	CodecIMA      = 99
)

// Errors returned by the parser. They are wrapped with context and should be
// tested with errors.Is.
var (
	ErrUnknownFormat      = errors.New("unknown AUD format")
	ErrUnsupportedStream  = errors.New("only mono 16-bit IMA ADPCM streams are supported")
	ErrTruncatedStream    = errors.New("truncated AUD stream")
	ErrCorruptBlockHeader = errors.New("invalid AUD block header")
)

// Format is an AUD header variant.
type Format int

const (
	FormatUnknown Format = iota
	FormatNew            // 12 byte header with decoded size.
	FormatOld            // 8 byte header without decoded size.
)

func (f Format) String() string {
	switch f {
	case FormatNew:
		return "new"
	case FormatOld:
		return "old"
	default:
		return "unknown"
	}
}

// HeaderSize returns the size of the file header for format f.
func (f Format) HeaderSize() int {
	switch f {
	case FormatNew:
		return NewHeaderSize
	case FormatOld:
		return OldHeaderSize
	default:
		return 0
	}
}

// BlockHeader precedes each block of encoded data.
type BlockHeader struct {
	EncSize uint16 // Encoded payload bytes following the header.
	DecSize uint16 // Decoded bytes, informational.
	Marker  uint16 // Always BlockMarker.
	Zero    uint16 // Always zero.
}

// Valid returns true if both sentinel fields hold their expected values.
func (b BlockHeader) Valid() bool { return b.Marker == BlockMarker && b.Zero == blockZero }

func parseBlockHeader(b []byte) BlockHeader {
	le := binary.LittleEndian
	return BlockHeader{
		EncSize: le.Uint16(b[0:2]),
		DecSize: le.Uint16(b[2:4]),
		Marker:  le.Uint16(b[4:6]),
		Zero:    le.Uint16(b[6:8]),
	}
}

func (b BlockHeader) appendBinary(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint16(dst, b.EncSize)
	dst = binary.LittleEndian.AppendUint16(dst, b.DecSize)
	dst = binary.LittleEndian.AppendUint16(dst, b.Marker)
	return binary.LittleEndian.AppendUint16(dst, b.Zero)
}

// Header describes an AUD stream. The fields up to Codec come from the file
// header, the rest are filled in by Scan.
type Header struct {
	Format     Format
	SampleRate uint16
	EncSize    uint32 // Encoded stream size from the file header.
	DecSize    uint32 // Decoded size, zero for FormatOld.
	Flags      uint8
	Codec      uint8

	FileSize         int64
	FirstBlockOffset int64
	FirstBlockSize   int
	LastBlockSize    int
	Blocks           int
	ADPCMBytes       int
	NumSamples       int
	TrailingBytes    int // Bytes after the last block too short for a header.
}

// Stereo returns true if the stereo flag is set.
func (h Header) Stereo() bool { return h.Flags&FlagStereo != 0 }

// BitDepth returns the sample bit depth given by the flags.
func (h Header) BitDepth() int {
	if h.Flags&Flag16Bit != 0 {
		return 16
	}
	return 8
}

// FlagsString describes the channel and bit depth flags, e.g. "mono 16-bit".
func (h Header) FlagsString() string {
	channels := "mono"
	if h.Stereo() {
		channels = "stereo"
	}
	return fmt.Sprintf("%s %d-bit", channels, h.BitDepth())
}

// CodecName returns a human readable name for the codec.
func (h Header) CodecName() string {
	switch h.Codec {
	case CodecWestwood:
		return "Westwood ADPCM"
	case CodecIMA:
		return "IMA ADPCM"
	default:
		return "Unknown"
	}
}

// Supported returns nil if the stream is mono 16-bit IMA ADPCM.
func (h Header) Supported() error {
	if h.Flags&(FlagStereo|Flag16Bit) != Flag16Bit || h.Codec != CodecIMA {
		return errors.Wrapf(ErrUnsupportedStream, "got %s codec %d (%s)", h.FlagsString(), h.Codec, h.CodecName())
	}
	return nil
}

// Duration returns the play time of the scanned samples.
func (h Header) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.NumSamples) * time.Second / time.Duration(h.SampleRate)
}

// EncodedDiff returns the scanned stream size, block headers included, less
// the encoded size given by the file header.
func (h Header) EncodedDiff() int {
	return h.ADPCMBytes + BlockHeaderSize*h.Blocks - int(h.EncSize)
}

// DecodedDiff returns the decoded PCM size of the scanned samples less the
// decoded size given by the file header. ok is false when the header has no
// decoded size, as is the case for FormatOld.
func (h Header) DecodedDiff() (diff int, ok bool) {
	if h.DecSize == 0 {
		return 0, false
	}
	return h.NumSamples*2 - int(h.DecSize), true
}

// DetectFormat probes for a valid block header directly after each of the
// candidate file header sizes, trying the new format first.
func DetectFormat(r io.ReaderAt) (Format, error) {
	for _, f := range []Format{FormatNew, FormatOld} {
		var buf [BlockHeaderSize]byte
		n, _ := r.ReadAt(buf[:], int64(f.HeaderSize()))
		if n == len(buf) && parseBlockHeader(buf[:]).Valid() {
			return f, nil
		}
	}
	return FormatUnknown, ErrUnknownFormat
}

// ParseHeader reads the file header of format f. If the stream is not
// supported the header is returned along with an error wrapping
// ErrUnsupportedStream.
func ParseHeader(r io.ReaderAt, f Format) (Header, error) {
	size := f.HeaderSize()
	if size == 0 {
		return Header{}, ErrUnknownFormat
	}
	buf := make([]byte, size)
	if n, err := r.ReadAt(buf, 0); n != size {
		return Header{}, errors.Wrapf(ErrTruncatedStream, "read %d of %d header bytes: %v", n, size, err)
	}

	le := binary.LittleEndian
	h := Header{
		Format:           f,
		SampleRate:       le.Uint16(buf[0:2]),
		EncSize:          uint32(le.Uint16(buf[2:4])) | uint32(le.Uint16(buf[4:6]))<<16,
		FirstBlockOffset: int64(size),
	}
	switch f {
	case FormatNew:
		h.DecSize = uint32(le.Uint16(buf[6:8])) | uint32(le.Uint16(buf[8:10]))<<16
		h.Flags, h.Codec = buf[10], buf[11]
	case FormatOld:
		h.Flags, h.Codec = buf[6], buf[7]
	}
	return h, h.Supported()
}

// Scan reads every block header from r, which must be positioned at the first
// block, skipping the payloads, and records block and sample counts in h.
// A clean end of stream ends the scan, as do trailing bytes too short to be
// a block header; their count is kept in h.TrailingBytes. On a truncated
// payload or invalid block header the counts of the blocks read so far are
// kept in h and an error is returned.
func Scan(r io.Reader, h *Header) error {
	h.Blocks, h.ADPCMBytes, h.NumSamples = 0, 0, 0
	h.FirstBlockSize, h.LastBlockSize, h.TrailingBytes = 0, 0, 0
	defer func() { h.NumSamples = h.ADPCMBytes * 2 }()

	off := h.FirstBlockOffset
	var buf [BlockHeaderSize]byte
	for {
		n, err := io.ReadFull(r, buf[:])
		switch {
		case err == io.EOF:
			return nil
		case err == io.ErrUnexpectedEOF:
			// Too short to be a header, treat as the end of the stream.
			h.TrailingBytes = n
			return nil
		case err != nil:
			return errors.Wrap(err, "could not read block header")
		}

		bh := parseBlockHeader(buf[:])
		if !bh.Valid() {
			return errors.Wrapf(ErrCorruptBlockHeader, "offset %d", off)
		}

		skipped, err := io.CopyN(io.Discard, r, int64(bh.EncSize))
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "could not read block payload")
		}
		if skipped != int64(bh.EncSize) {
			return errors.Wrapf(ErrTruncatedStream, "read %d bytes instead of %d", skipped, bh.EncSize)
		}

		if h.Blocks == 0 {
			h.FirstBlockSize = int(bh.EncSize)
		}
		h.LastBlockSize = int(bh.EncSize)
		h.Blocks++
		h.ADPCMBytes += int(bh.EncSize)
		off += BlockHeaderSize + int64(bh.EncSize)
	}
}

// Open detects the format of the AUD stream in r of the given size, parses its
// header and scans its blocks. The returned header holds whatever was learnt
// before any error.
func Open(r io.ReaderAt, size int64) (Header, error) {
	f, err := DetectFormat(r)
	if err != nil {
		return Header{}, err
	}
	h, err := ParseHeader(r, f)
	h.FileSize = size
	if err != nil {
		return h, err
	}
	err = Scan(Blocks(r, h), &h)
	if err != nil {
		return h, fmt.Errorf("error while analyzing file: %w", err)
	}
	return h, nil
}

// Blocks returns a buffered reader over the block stream of h within r.
// Each call returns an independent reader.
func Blocks(r io.ReaderAt, h Header) io.Reader {
	return bufio.NewReader(io.NewSectionReader(r, h.FirstBlockOffset, h.FileSize-h.FirstBlockOffset))
}
