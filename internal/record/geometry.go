// Package record defines the fixed-width on-disk records that make up a
// toyfs image: the superblock, the inode table and the data-block table.
// Encoding follows the manual byte-slice layout used throughout
// github.com/diskfs/go-diskfs/filesystem/iso9660's directoryEntry: no
// reflection, no gob, one PutUint/Uint call per field, little-endian on
// every host.
package record

import "fmt"

// Default geometry constants, matching spec.md section 3.
const (
	DefaultNameMax      = 32
	DefaultDirectBlocks = 12
	DefaultBlockSize    = 1024
)

// Geometry pins the per-image constants that every fixed-width record
// depends on. Unlike the original C sources, which bake NAME_MAX,
// DIRECT_BLOCKS_COUNT and BLOCK_SIZE in as compile-time #defines, toyfs
// carries them in the superblock so that Load can size its tables before
// reading a single inode or data block.
type Geometry struct {
	NumBlocks    uint32
	NameMax      uint32
	DirectBlocks uint32
	BlockSize    uint32
}

// DefaultGeometry returns the spec.md section 3 defaults for the given
// block count.
func DefaultGeometry(numBlocks uint32) Geometry {
	return Geometry{
		NumBlocks:    numBlocks,
		NameMax:      DefaultNameMax,
		DirectBlocks: DefaultDirectBlocks,
		BlockSize:    DefaultBlockSize,
	}
}

// Validate rejects geometries that cannot back a single valid record.
func (g Geometry) Validate() error {
	if g.NumBlocks == 0 {
		return fmt.Errorf("geometry: num_blocks must be > 0")
	}
	if g.NameMax == 0 {
		return fmt.Errorf("geometry: name_max must be > 0")
	}
	if g.DirectBlocks == 0 {
		return fmt.Errorf("geometry: direct_blocks must be > 0")
	}
	if g.BlockSize == 0 {
		return fmt.Errorf("geometry: block_size must be > 0")
	}
	return nil
}

// InodeSize returns the fixed wire size of one Inode record under this
// geometry: type(1) + size(4) + name(NameMax) + direct_blocks(4*DirectBlocks) + parent(4).
func (g Geometry) InodeSize() int {
	return 1 + 4 + int(g.NameMax) + 4*int(g.DirectBlocks) + 4
}

// DataBlockSize returns the fixed wire size of one DataBlock record under
// this geometry: block(BlockSize) + size(4).
func (g Geometry) DataBlockSize() int {
	return int(g.BlockSize) + 4
}
