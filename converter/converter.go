// Package converter adapts a *toyfs.Filesystem into an io/fs.FS, the way
// github.com/diskfs/go-diskfs/converter adapts its filesystem.FileSystem
// interface, so a toyfs image can be mounted under http.FileServer or
// walked with io/fs helpers without a toyfs-specific API.
package converter

import (
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/go-toyfs/toyfs"
)

type toyFS struct {
	fsys *toyfs.Filesystem
}

// FS wraps fsys as a read-only io/fs.FS.
func FS(fsys *toyfs.Filesystem) fs.FS {
	return &toyFS{fsys: fsys}
}

func toImagePath(name string) (string, error) {
	if name == "." {
		return "/", nil
	}
	if !fs.ValidPath(name) {
		return "", fs.ErrInvalid
	}
	return "/" + name, nil
}

func (t *toyFS) Open(name string) (fs.File, error) {
	imgPath, err := toImagePath(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	info, err := t.fsys.Stat(imgPath)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	if info.IsDir {
		entries, err := t.fsys.ReadDir(imgPath)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return &dirFile{name: path.Base(name), entries: entries}, nil
	}

	data, err := t.fsys.ReadFile(imgPath)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return &regularFile{info: info, data: data}, nil
}

// fileInfo implements fs.FileInfo over an toyfs.EntryInfo.
type fileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (fi fileInfo) Name() string { return fi.name }
func (fi fileInfo) Size() int64  { return fi.size }
func (fi fileInfo) Mode() fs.FileMode {
	if fi.isDir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}
func (fi fileInfo) ModTime() time.Time { return time.Time{} }
func (fi fileInfo) IsDir() bool        { return fi.isDir }
func (fi fileInfo) Sys() any           { return nil }

// regularFile implements fs.File over an already-read byte slice.
type regularFile struct {
	info   toyfs.EntryInfo
	data   []byte
	offset int
}

func (f *regularFile) Stat() (fs.FileInfo, error) {
	return fileInfo{name: f.info.Name, size: f.info.Size}, nil
}

func (f *regularFile) Read(b []byte) (int, error) {
	if f.offset >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(b, f.data[f.offset:])
	f.offset += n
	return n, nil
}

func (f *regularFile) Close() error { return nil }

// dirFile implements fs.ReadDirFile over a pre-fetched entry listing.
type dirFile struct {
	name    string
	entries []toyfs.EntryInfo
	offset  int
}

func (d *dirFile) Stat() (fs.FileInfo, error) {
	return fileInfo{name: d.name, isDir: true}, nil
}

func (d *dirFile) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: fs.ErrInvalid}
}

func (d *dirFile) Close() error { return nil }

func (d *dirFile) ReadDir(n int) ([]fs.DirEntry, error) {
	remaining := d.entries[d.offset:]
	if n <= 0 {
		d.offset = len(d.entries)
		return toDirEntries(remaining), nil
	}
	if len(remaining) == 0 {
		return nil, io.EOF
	}
	if n > len(remaining) {
		n = len(remaining)
	}
	d.offset += n
	return toDirEntries(remaining[:n]), nil
}

func toDirEntries(entries []toyfs.EntryInfo) []fs.DirEntry {
	out := make([]fs.DirEntry, len(entries))
	for i, e := range entries {
		out[i] = fs.FileInfoToDirEntry(fileInfo{name: e.Name, size: e.Size, isDir: e.IsDir})
	}
	return out
}
