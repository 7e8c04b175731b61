package toyfs

import (
	"strings"

	"github.com/go-toyfs/toyfs/internal/pathutil"
	"github.com/go-toyfs/toyfs/internal/record"
)

// List resolves path to a directory and returns its children as a
// newline-terminated textual listing, one "DIR <name>\n" or "FIL <name>\n"
// line per non-empty direct-block slot in slot order. An empty directory
// yields an empty string.
func (fsys *Filesystem) List(path string) (string, error) {
	i, err := pathutil.Resolve(fsys.arena, fsys.root, path)
	if err != nil {
		return "", err
	}
	dir := &fsys.arena.Inodes[i]
	if dir.Type != record.TypeDirectory {
		return "", ErrIsFile
	}

	var b strings.Builder
	for _, c := range dir.DirectBlocks {
		if c == record.NoEntry {
			continue
		}
		child := &fsys.arena.Inodes[c]
		if child.Type == record.TypeFree {
			continue // stale slot; should not occur given the invariants
		}
		switch child.Type {
		case record.TypeDirectory:
			b.WriteString("DIR ")
		case record.TypeFile:
			b.WriteString("FIL ")
		}
		b.WriteString(child.Name)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
