package record

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// SuperblockSize is the fixed wire size of a Superblock record:
// image id (16) + num_blocks(4) + free_blocks(4) + name_max(4) + direct_blocks(4) + block_size(4).
const SuperblockSize = 16 + 4 + 4 + 4 + 4 + 4

// Superblock is the first record in a toyfs image. ImageID has no bearing
// on any invariant; it exists purely so two images created at different
// times are distinguishable, the same role a volume UUID plays in
// filesystem/ext4's superblock.
type Superblock struct {
	ImageID    uuid.UUID
	Geometry   Geometry
	FreeBlocks uint32
}

// MarshalBinary encodes the superblock into its fixed-size wire form.
func (s Superblock) MarshalBinary() ([]byte, error) {
	b := make([]byte, SuperblockSize)
	copy(b[0:16], s.ImageID[:])
	binary.LittleEndian.PutUint32(b[16:20], s.Geometry.NumBlocks)
	binary.LittleEndian.PutUint32(b[20:24], s.FreeBlocks)
	binary.LittleEndian.PutUint32(b[24:28], s.Geometry.NameMax)
	binary.LittleEndian.PutUint32(b[28:32], s.Geometry.DirectBlocks)
	binary.LittleEndian.PutUint32(b[32:36], s.Geometry.BlockSize)
	return b, nil
}

// UnmarshalBinary decodes a superblock from its fixed-size wire form.
func (s *Superblock) UnmarshalBinary(b []byte) error {
	if len(b) < SuperblockSize {
		return fmt.Errorf("superblock: short record: have %d bytes, want %d", len(b), SuperblockSize)
	}
	copy(s.ImageID[:], b[0:16])
	s.Geometry.NumBlocks = binary.LittleEndian.Uint32(b[16:20])
	s.FreeBlocks = binary.LittleEndian.Uint32(b[20:24])
	s.Geometry.NameMax = binary.LittleEndian.Uint32(b[24:28])
	s.Geometry.DirectBlocks = binary.LittleEndian.Uint32(b[28:32])
	s.Geometry.BlockSize = binary.LittleEndian.Uint32(b[32:36])
	return nil
}
