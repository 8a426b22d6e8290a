/*
NAME
  block.go

DESCRIPTION
  block.go defines a single block of IMA ADPCM wav data.

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
	"io"

	"github.com/ausocean/aud2wav/codec/adpcm"
)

// Block is one independently decodable IMA ADPCM block. State is the
// decoder state stored in the block header and Payload holds the packed
// nibbles, low nibble first.
type Block struct {
	State   adpcm.State
	Payload []byte
}

// Len returns the encoded size of the block.
func (b Block) Len() int { return BlockHeaderSize + len(b.Payload) }

// AppendBinary appends the encoded block to dst.
func (b Block) AppendBinary(dst []byte) []byte {
	var head [BlockHeaderSize]byte
	adpcm.PutBlockState(head[:], b.State)
	dst = append(dst, head[:]...)
	return append(dst, b.Payload...)
}

// WriteTo writes the encoded block to w.
func (b Block) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.AppendBinary(make([]byte, 0, b.Len())))
	return int64(n), err
}
