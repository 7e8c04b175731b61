package toyfs

import (
	"github.com/go-toyfs/toyfs/internal/pathutil"
	"github.com/go-toyfs/toyfs/internal/record"
)

// EntryInfo is the directory-entry-shaped metadata converter.FS needs to
// satisfy io/fs.FileInfo without reaching into the arena directly.
type EntryInfo struct {
	Name  string
	IsDir bool
	Size  int64
}

// Stat resolves path and returns its entry metadata.
func (fsys *Filesystem) Stat(path string) (EntryInfo, error) {
	i, err := pathutil.Resolve(fsys.arena, fsys.root, path)
	if err != nil {
		return EntryInfo{}, err
	}
	return fsys.entryInfo(i), nil
}

// ReadDir resolves path to a directory and returns its children's entry
// metadata in direct-block order.
func (fsys *Filesystem) ReadDir(path string) ([]EntryInfo, error) {
	i, err := pathutil.Resolve(fsys.arena, fsys.root, path)
	if err != nil {
		return nil, err
	}
	dir := &fsys.arena.Inodes[i]
	if dir.Type != record.TypeDirectory {
		return nil, ErrIsFile
	}
	var out []EntryInfo
	for _, c := range dir.DirectBlocks {
		if c == record.NoEntry {
			continue
		}
		out = append(out, fsys.entryInfo(int(c)))
	}
	return out, nil
}

func (fsys *Filesystem) entryInfo(i int) EntryInfo {
	n := &fsys.arena.Inodes[i]
	return EntryInfo{
		Name:  n.Name,
		IsDir: n.Type == record.TypeDirectory,
		Size:  int64(n.Size),
	}
}
