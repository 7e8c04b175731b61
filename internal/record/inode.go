package record

import (
	"encoding/binary"
	"fmt"
)

// Type is the tag of an inode slot. The original C sources carry a fourth
// state, `removed`, that is structurally indistinguishable from `free`
// (spec.md section 9); toyfs collapses it away, so a removed inode goes
// straight back to TypeFree.
type Type uint8

const (
	TypeFree Type = iota
	TypeFile
	TypeDirectory
)

func (t Type) String() string {
	switch t {
	case TypeFree:
		return "free"
	case TypeFile:
		return "file"
	case TypeDirectory:
		return "directory"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// NoEntry marks an unused direct-block slot or a root's parent pointer.
const NoEntry int32 = -1

// Inode is a single namespace entry: a directory or a regular file.
// DirectBlocks holds child inode indices when Type is TypeDirectory, or
// data-block indices when Type is TypeFile.
type Inode struct {
	Type         Type
	Size         uint32
	Name         string
	DirectBlocks []int32
	Parent       int32
}

// NewFree returns a zeroed, free inode record sized for the given geometry.
func NewFree(g Geometry) Inode {
	db := make([]int32, g.DirectBlocks)
	for i := range db {
		db[i] = NoEntry
	}
	return Inode{
		Type:         TypeFree,
		DirectBlocks: db,
		Parent:       NoEntry,
	}
}

// MarshalBinary encodes the inode into its fixed-size wire form under g.
func (n Inode) MarshalBinary(g Geometry) ([]byte, error) {
	if uint32(len(n.DirectBlocks)) != g.DirectBlocks {
		return nil, fmt.Errorf("inode: direct_blocks length %d does not match geometry %d", len(n.DirectBlocks), g.DirectBlocks)
	}
	if uint32(len(n.Name)) > g.NameMax {
		return nil, fmt.Errorf("inode: name %q exceeds name_max %d", n.Name, g.NameMax)
	}

	size := g.InodeSize()
	b := make([]byte, size)
	off := 0
	b[off] = byte(n.Type)
	off++
	binary.LittleEndian.PutUint32(b[off:off+4], n.Size)
	off += 4
	copy(b[off:off+int(g.NameMax)], n.Name)
	off += int(g.NameMax)
	for _, db := range n.DirectBlocks {
		binary.LittleEndian.PutUint32(b[off:off+4], uint32(db))
		off += 4
	}
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(n.Parent))
	off += 4
	return b, nil
}

// UnmarshalBinary decodes an inode from its fixed-size wire form under g.
func (n *Inode) UnmarshalBinary(g Geometry, b []byte) error {
	size := g.InodeSize()
	if len(b) < size {
		return fmt.Errorf("inode: short record: have %d bytes, want %d", len(b), size)
	}
	off := 0
	n.Type = Type(b[off])
	off++
	n.Size = binary.LittleEndian.Uint32(b[off : off+4])
	off += 4
	n.Name = trimZeroes(b[off : off+int(g.NameMax)])
	off += int(g.NameMax)
	n.DirectBlocks = make([]int32, g.DirectBlocks)
	for i := range n.DirectBlocks {
		n.DirectBlocks[i] = int32(binary.LittleEndian.Uint32(b[off : off+4]))
		off += 4
	}
	n.Parent = int32(binary.LittleEndian.Uint32(b[off : off+4]))
	off += 4
	return nil
}

// trimZeroes returns the leading non-NUL prefix of b as a string.
func trimZeroes(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
