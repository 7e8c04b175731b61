// Package backend abstracts the single file that backs a toyfs image, the
// way github.com/diskfs/go-diskfs/backend abstracts a disk's block device
// or image file. toyfs images are never partitioned, so the windowed
// SubStorage view the teacher layers on top has no caller here and is not
// carried over (see DESIGN.md).
package backend

import (
	"errors"
	"io"
	"io/fs"
)

var (
	ErrIncorrectOpenMode = errors.New("image file not open for write")
	ErrNotSuitable       = errors.New("backing file is not suitable")
)

type File interface {
	fs.File
	io.ReaderAt
	io.Seeker
	io.Closer
}

type WritableFile interface {
	File
	io.WriterAt
}

// Storage is the backing store for one toyfs image.
type Storage interface {
	File
	// Writable returns a handle usable for WriteAt, or ErrIncorrectOpenMode
	// if the storage was opened read-only.
	Writable() (WritableFile, error)
	// Fd exposes the underlying file descriptor for advisory locking via
	// golang.org/x/sys/unix.Flock. Returns ErrNotSuitable if the backing
	// storage isn't an *os.File (e.g. it's an in-memory fake in a test).
	Fd() (uintptr, error)
}
