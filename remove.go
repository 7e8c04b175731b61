package toyfs

import (
	"fmt"

	"github.com/go-toyfs/toyfs/internal/pathutil"
	"github.com/go-toyfs/toyfs/internal/record"
)

// Remove deletes path and, if it is a directory, everything beneath it.
// Removing the root directory is rejected with ErrBadPath.
func (fsys *Filesystem) Remove(path string) error {
	i, err := pathutil.Resolve(fsys.arena, fsys.root, path)
	if err != nil {
		return err
	}
	if i == fsys.root {
		return fmt.Errorf("%w: cannot remove root", ErrBadPath)
	}

	if err := fsys.removeSubtree(i); err != nil {
		return err
	}

	parent := fsys.arena.Inodes[i].Parent
	for k, c := range fsys.arena.Inodes[parent].DirectBlocks {
		if c == int32(i) {
			fsys.arena.Inodes[parent].DirectBlocks[k] = record.NoEntry
			break
		}
	}

	if err := fsys.arena.FreeInode(i); err != nil {
		return err
	}

	fsys.log.WithField("path", path).Debug("rm")
	return nil
}

// removeSubtree releases i's owned resources — recursively for a
// directory's children, or the owned data blocks for a regular file —
// without touching i's own slot or its parent's linkage.
func (fsys *Filesystem) removeSubtree(i int) error {
	n := &fsys.arena.Inodes[i]
	switch n.Type {
	case record.TypeDirectory:
		for _, c := range n.DirectBlocks {
			if c == record.NoEntry {
				continue
			}
			if err := fsys.removeSubtree(int(c)); err != nil {
				return err
			}
			if err := fsys.arena.FreeInode(int(c)); err != nil {
				return err
			}
		}
	case record.TypeFile:
		for _, c := range n.DirectBlocks {
			if c == record.NoEntry {
				continue
			}
			if err := fsys.arena.FreeBlock(int(c)); err != nil {
				return err
			}
		}
	}
	return nil
}
