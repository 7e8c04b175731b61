package arena

import (
	"fmt"

	"github.com/go-toyfs/toyfs/internal/record"
)

// ErrNoSpace is returned by AllocInode/AllocBlock when every slot sharing
// the free-list is in use.
var ErrNoSpace = fmt.Errorf("arena: no space left")

// Arena owns the three parallel fixed-length tables of a toyfs image: the
// free-list, the inode table and the data-block table, all of length
// Geometry.NumBlocks. An index i is a "ticket" shared by both tables: once
// FreeList marks i used, neither AllocInode nor AllocBlock will hand out i
// again until it is freed, matching spec.md section 4.2's free-list
// semantics. Inode-slot freeness itself is tracked by Inodes[i].Type ==
// TypeFree, per spec.md section 9's consolidation of the source's two
// divergent notions of "free".
type Arena struct {
	Geometry record.Geometry
	FreeList *FreeList
	Inodes   []record.Inode
	Blocks   []record.DataBlock
}

// New builds a fresh, fully-free arena for the given geometry.
func New(g record.Geometry) *Arena {
	n := int(g.NumBlocks)
	inodes := make([]record.Inode, n)
	blocks := make([]record.DataBlock, n)
	for i := range inodes {
		inodes[i] = record.NewFree(g)
		blocks[i] = record.NewFreeBlock(g)
	}
	return &Arena{
		Geometry: g,
		FreeList: NewFreeList(n),
		Inodes:   inodes,
		Blocks:   blocks,
	}
}

// FromTables wraps tables already decoded from an image (by the codec)
// into an Arena, without reinitializing them.
func FromTables(g record.Geometry, fl *FreeList, inodes []record.Inode, blocks []record.DataBlock) *Arena {
	return &Arena{Geometry: g, FreeList: fl, Inodes: inodes, Blocks: blocks}
}

// FreeBlocks reports how many of the N shared tickets are currently free,
// the value the superblock's free_blocks field must always agree with.
func (a *Arena) FreeBlocks() uint32 {
	return uint32(a.FreeList.CountFree())
}

// AllocInode reserves the lowest-indexed slot that is both free on the
// free-list and still tagged TypeFree in the inode table, and returns its
// index. The caller is expected to immediately overwrite Inodes[i] with
// the new inode's contents.
func (a *Arena) AllocInode() (int, error) {
	for i := 0; i < len(a.Inodes); i++ {
		free, err := a.FreeList.IsFree(i)
		if err != nil {
			return 0, err
		}
		if free && a.Inodes[i].Type == record.TypeFree {
			if err := a.FreeList.SetUsed(i); err != nil {
				return 0, err
			}
			return i, nil
		}
	}
	return 0, ErrNoSpace
}

// FreeInode releases inode slot i: it is reset to a free record and its
// free-list ticket is returned to the pool.
func (a *Arena) FreeInode(i int) error {
	if i < 0 || i >= len(a.Inodes) {
		return fmt.Errorf("arena: inode index %d out of range", i)
	}
	a.Inodes[i] = record.NewFree(a.Geometry)
	return a.FreeList.SetFree(i)
}

// AllocBlock reserves the lowest-indexed free-list ticket for use as a
// data block and returns its index.
func (a *Arena) AllocBlock() (int, error) {
	i := a.FreeList.FirstFree(0)
	if i == -1 {
		return 0, ErrNoSpace
	}
	if err := a.FreeList.SetUsed(i); err != nil {
		return 0, err
	}
	return i, nil
}

// FreeBlock releases data-block slot i: it is zeroed and its free-list
// ticket is returned to the pool.
func (a *Arena) FreeBlock(i int) error {
	if i < 0 || i >= len(a.Blocks) {
		return fmt.Errorf("arena: block index %d out of range", i)
	}
	a.Blocks[i] = record.NewFreeBlock(a.Geometry)
	return a.FreeList.SetFree(i)
}
