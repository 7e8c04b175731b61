package toyfs

import (
	"github.com/go-toyfs/toyfs/internal/pathutil"
	"github.com/go-toyfs/toyfs/internal/record"
)

// ReadFile resolves path to a regular file and returns the concatenation
// of its data blocks' used bytes, in direct-block order. A zero-length
// file returns an empty, non-nil slice.
func (fsys *Filesystem) ReadFile(path string) ([]byte, error) {
	i, err := pathutil.Resolve(fsys.arena, fsys.root, path)
	if err != nil {
		return nil, err
	}
	f := &fsys.arena.Inodes[i]
	if f.Type == record.TypeDirectory {
		return nil, ErrIsDirectory
	}

	out := make([]byte, 0, f.Size)
	for _, c := range f.DirectBlocks {
		if c == record.NoEntry {
			continue
		}
		blk := &fsys.arena.Blocks[c]
		out = append(out, blk.Data[:blk.Size]...)
	}
	return out, nil
}
