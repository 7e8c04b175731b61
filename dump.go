package toyfs

import (
	"fmt"

	"github.com/go-toyfs/toyfs/backend"
	"github.com/go-toyfs/toyfs/backend/file"
	"github.com/go-toyfs/toyfs/internal/imagefile"
	"github.com/go-toyfs/toyfs/internal/record"
)

// Dump serializes the filesystem to path: one superblock record, then N
// free-list bytes, then N inode records, then N data-block records, each
// record fixed-size per the geometry. path is created if absent and
// truncated if it already exists. An advisory exclusive flock is held
// for the duration of the write when it can be taken; a failure to lock
// is not reported.
func (fsys *Filesystem) Dump(path string) error {
	size := imageSize(fsys.geometry)
	storage, err := file.CreateOrTruncateFromPath(path, size)
	if err != nil {
		return fmt.Errorf("%w: opening image for write: %v", ErrIOError, err)
	}
	defer storage.Close()

	if unlock, err := lockStorage(storage, imagefile.LockExclusive); err == nil {
		defer unlock()
	}

	w, err := storage.Writable()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}

	sb := record.Superblock{
		ImageID:    fsys.imageID,
		Geometry:   fsys.geometry,
		FreeBlocks: fsys.arena.FreeBlocks(),
	}
	sbBytes, err := sb.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: superblock: %v", ErrIOError, err)
	}
	off := int64(0)
	if err := writeAt(w, sbBytes, &off); err != nil {
		return err
	}

	if err := writeAt(w, fsys.arena.FreeList.Bytes(), &off); err != nil {
		return err
	}

	for i := range fsys.arena.Inodes {
		b, err := fsys.arena.Inodes[i].MarshalBinary(fsys.geometry)
		if err != nil {
			return fmt.Errorf("%w: inode %d: %v", ErrIOError, i, err)
		}
		if err := writeAt(w, b, &off); err != nil {
			return err
		}
	}

	for i := range fsys.arena.Blocks {
		b, err := fsys.arena.Blocks[i].MarshalBinary(fsys.geometry)
		if err != nil {
			return fmt.Errorf("%w: data block %d: %v", ErrIOError, i, err)
		}
		if err := writeAt(w, b, &off); err != nil {
			return err
		}
	}

	fsys.log.WithField("path", path).Info("image dumped")
	return nil
}

// imageSize computes the exact byte length of a serialized image under g.
func imageSize(g record.Geometry) int64 {
	n := int64(g.NumBlocks)
	return int64(record.SuperblockSize) + n + n*int64(g.InodeSize()) + n*int64(g.DataBlockSize())
}

func writeAt(w backend.WritableFile, b []byte, off *int64) error {
	n, err := w.WriteAt(b, *off)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	*off += int64(n)
	return nil
}

func lockStorage(storage backend.Storage, kind imagefile.LockKind) (func() error, error) {
	fd, err := storage.Fd()
	if err != nil {
		return nil, err
	}
	return imagefile.Lock(fd, kind)
}
