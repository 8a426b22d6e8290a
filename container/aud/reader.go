/*
NAME
  reader.go

DESCRIPTION
  reader.go provides a reader for the block payloads of a scanned AUD stream.

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
	"io"

	"github.com/pkg/errors"
)

// BlockReader returns the payloads of the blocks counted by Scan, in order.
type BlockReader struct {
	r      io.Reader
	blocks int // Blocks still to be read.
	off    int64
	head   [BlockHeaderSize]byte
	buf    []byte
}

// NewBlockReader returns a BlockReader reading the blocks described by h from
// r, which must be positioned at the first block.
func NewBlockReader(r io.Reader, h Header) *BlockReader {
	return &BlockReader{
		r:      r,
		blocks: h.Blocks,
		off:    h.FirstBlockOffset,
		buf:    make([]byte, 0, MaxPayload),
	}
}

// Next returns the payload of the next block. The returned slice is only
// valid until the following call. io.EOF is returned once all scanned blocks
// have been read; a short read gives an error wrapping ErrTruncatedStream.
func (br *BlockReader) Next() ([]byte, error) {
	if br.blocks <= 0 {
		return nil, io.EOF
	}

	n, err := io.ReadFull(br.r, br.head[:])
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrapf(ErrTruncatedStream, "read %d bytes of header at offset %d", n, br.off)
		}
		return nil, errors.Wrap(err, "could not read block header")
	}
	bh := parseBlockHeader(br.head[:])
	if !bh.Valid() {
		return nil, errors.Wrapf(ErrCorruptBlockHeader, "offset %d", br.off)
	}

	br.buf = br.buf[:bh.EncSize]
	n, err = io.ReadFull(br.r, br.buf)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrapf(ErrTruncatedStream, "read %d bytes instead of %d at offset %d", n, bh.EncSize, br.off)
		}
		return nil, errors.Wrap(err, "could not read block payload")
	}

	br.blocks--
	br.off += BlockHeaderSize + int64(bh.EncSize)
	return br.buf, nil
}
