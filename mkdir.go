package toyfs

import (
	"fmt"

	"github.com/go-toyfs/toyfs/internal/pathutil"
	"github.com/go-toyfs/toyfs/internal/record"
)

// Mkdir creates an empty directory at path. The parent must already
// exist; path's final component must be unique among its siblings and
// shorter than the geometry's NameMax.
func (fsys *Filesystem) Mkdir(path string) error {
	if _, err := fsys.createEntry(path, record.TypeDirectory); err != nil {
		return err
	}
	fsys.log.WithField("path", path).Debug("mkdir")
	return nil
}

// createEntry implements the shared mkdir/mkfile flow of spec.md sections
// 4.4-4.5: resolve the parent, reject duplicates and over-long names,
// allocate an inode, and link it into the parent's direct blocks.
func (fsys *Filesystem) createEntry(path string, typ record.Type) (int, error) {
	parent, name, err := pathutil.ResolveParent(fsys.arena, fsys.root, path)
	if err != nil {
		return 0, err
	}
	if uint32(len(name)) >= fsys.geometry.NameMax {
		return 0, fmt.Errorf("%w: %q", ErrNameTooLong, name)
	}
	if fsys.findChild(parent, name) != -1 {
		return 0, fmt.Errorf("%w: %q", ErrAlreadyExists, name)
	}

	i, err := fsys.arena.AllocInode()
	if err != nil {
		return 0, err
	}
	fsys.arena.Inodes[i] = record.Inode{
		Type:         typ,
		Name:         name,
		DirectBlocks: freeDirectBlocks(fsys.geometry),
		Parent:       int32(parent),
	}

	slot := fsys.firstFreeDirectBlock(parent)
	if slot == -1 {
		// Undo the inode allocation; the parent has no room to link it.
		_ = fsys.arena.FreeInode(i)
		return 0, ErrDirFull
	}
	fsys.arena.Inodes[parent].DirectBlocks[slot] = int32(i)
	return i, nil
}

// findChild scans parent's direct blocks for a child named name, or
// returns -1 if absent.
func (fsys *Filesystem) findChild(parent int, name string) int {
	for _, c := range fsys.arena.Inodes[parent].DirectBlocks {
		if c == record.NoEntry {
			continue
		}
		if fsys.arena.Inodes[c].Name == name {
			return int(c)
		}
	}
	return -1
}

// firstFreeDirectBlock returns the lowest-indexed unused direct-block slot
// of parent, or -1 if it is full.
func (fsys *Filesystem) firstFreeDirectBlock(parent int) int {
	for i, c := range fsys.arena.Inodes[parent].DirectBlocks {
		if c == record.NoEntry {
			return i
		}
	}
	return -1
}
