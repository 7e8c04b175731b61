package toyfs

import (
	"github.com/go-toyfs/toyfs/internal/pathutil"
	"github.com/go-toyfs/toyfs/internal/record"
)

// WriteFile appends data to the regular file at path and returns the
// number of bytes actually written. A write that runs out of data-block
// or direct-block capacity stops early and returns a short count rather
// than an error: per spec.md section 4.7, append is not atomic.
func (fsys *Filesystem) WriteFile(path string, data []byte) (int, error) {
	i, err := pathutil.Resolve(fsys.arena, fsys.root, path)
	if err != nil {
		return 0, err
	}
	f := &fsys.arena.Inodes[i]
	if f.Type != record.TypeFile {
		return 0, ErrIsDirectory
	}

	written := 0
	blockSize := int(fsys.geometry.BlockSize)

	// Fill the remaining capacity of the last in-use block first.
	if k := lastUsedSlot(f); k != -1 {
		blk := &fsys.arena.Blocks[f.DirectBlocks[k]]
		if room := blockSize - int(blk.Size); room > 0 && len(data) > 0 {
			n := room
			if n > len(data) {
				n = len(data)
			}
			copy(blk.Data[blk.Size:], data[:n])
			blk.Size += uint32(n)
			data = data[n:]
			written += n
			f.Size += uint32(n)
		}
	}

	for len(data) > 0 {
		slot := firstFreeDirectSlot(f)
		if slot == -1 {
			break // DirFull: all direct_blocks slots consumed
		}
		bi, err := fsys.arena.AllocBlock()
		if err != nil {
			break // NoSpace: stop, returning the partial count
		}
		n := blockSize
		if n > len(data) {
			n = len(data)
		}
		blk := &fsys.arena.Blocks[bi]
		copy(blk.Data, data[:n])
		blk.Size = uint32(n)
		f.DirectBlocks[slot] = int32(bi)
		data = data[n:]
		written += n
		f.Size += uint32(n)
	}

	fsys.log.WithField("path", path).WithField("bytes", written).Debug("writef")
	return written, nil
}

// lastUsedSlot returns the highest-indexed occupied direct-block slot of
// f, or -1 if f owns no data blocks yet.
func lastUsedSlot(f *record.Inode) int {
	last := -1
	for k, c := range f.DirectBlocks {
		if c != record.NoEntry {
			last = k
		}
	}
	return last
}

// firstFreeDirectSlot returns the lowest-indexed unused direct-block slot
// of f, or -1 if every slot is occupied.
func firstFreeDirectSlot(f *record.Inode) int {
	for k, c := range f.DirectBlocks {
		if c == record.NoEntry {
			return k
		}
	}
	return -1
}
