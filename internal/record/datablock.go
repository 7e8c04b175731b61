package record

import (
	"encoding/binary"
	"fmt"
)

// DataBlock is one fixed-size chunk of a regular file's content. Size is
// the number of leading bytes of Data actually in use; the remainder is
// zero-filled padding, never interpreted.
type DataBlock struct {
	Data []byte
	Size uint32
}

// NewFreeBlock returns a zeroed data block sized for the given geometry.
func NewFreeBlock(g Geometry) DataBlock {
	return DataBlock{Data: make([]byte, g.BlockSize)}
}

// MarshalBinary encodes the data block into its fixed-size wire form under g.
func (d DataBlock) MarshalBinary(g Geometry) ([]byte, error) {
	if uint32(len(d.Data)) != g.BlockSize {
		return nil, fmt.Errorf("data block: data length %d does not match geometry block_size %d", len(d.Data), g.BlockSize)
	}
	b := make([]byte, g.DataBlockSize())
	copy(b[:g.BlockSize], d.Data)
	binary.LittleEndian.PutUint32(b[g.BlockSize:g.BlockSize+4], d.Size)
	return b, nil
}

// UnmarshalBinary decodes a data block from its fixed-size wire form under g.
func (d *DataBlock) UnmarshalBinary(g Geometry, b []byte) error {
	size := g.DataBlockSize()
	if len(b) < size {
		return fmt.Errorf("data block: short record: have %d bytes, want %d", len(b), size)
	}
	d.Data = make([]byte, g.BlockSize)
	copy(d.Data, b[:g.BlockSize])
	d.Size = binary.LittleEndian.Uint32(b[g.BlockSize : g.BlockSize+4])
	return nil
}
