package toyfs

import (
	"fmt"

	"github.com/go-toyfs/toyfs/backend"
	"github.com/go-toyfs/toyfs/backend/file"
	"github.com/go-toyfs/toyfs/internal/arena"
	"github.com/go-toyfs/toyfs/internal/imagefile"
	"github.com/go-toyfs/toyfs/internal/record"
)

// Load reads an image file from path and reconstructs a Filesystem,
// discovering N from the superblock before sizing the inode and
// data-block tables. An advisory shared flock is held for the duration
// of the read when it can be taken; a failure to lock is not reported.
func Load(path string) (*Filesystem, error) {
	storage, err := file.OpenFromPath(path, true)
	if err != nil {
		return nil, fmt.Errorf("%w: opening image: %v", ErrIOError, err)
	}
	defer storage.Close()

	if unlock, err := lockStorage(storage, imagefile.LockShared); err == nil {
		defer unlock()
	}

	off := int64(0)

	sbBytes := make([]byte, record.SuperblockSize)
	if err := readAt(storage, sbBytes, &off); err != nil {
		return nil, err
	}
	var sb record.Superblock
	if err := sb.UnmarshalBinary(sbBytes); err != nil {
		return nil, fmt.Errorf("%w: superblock: %v", ErrInvalidImage, err)
	}
	g := sb.Geometry
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	n := int(g.NumBlocks)

	flBytes := make([]byte, n)
	if err := readAt(storage, flBytes, &off); err != nil {
		return nil, err
	}
	freeList := arena.FromBytes(flBytes)

	inodes := make([]record.Inode, n)
	inodeSize := g.InodeSize()
	buf := make([]byte, inodeSize)
	for i := 0; i < n; i++ {
		if err := readAt(storage, buf, &off); err != nil {
			return nil, err
		}
		if err := inodes[i].UnmarshalBinary(g, buf); err != nil {
			return nil, fmt.Errorf("%w: inode %d: %v", ErrInvalidImage, i, err)
		}
	}

	blocks := make([]record.DataBlock, n)
	blockSize := g.DataBlockSize()
	bbuf := make([]byte, blockSize)
	for i := 0; i < n; i++ {
		if err := readAt(storage, bbuf, &off); err != nil {
			return nil, err
		}
		if err := blocks[i].UnmarshalBinary(g, bbuf); err != nil {
			return nil, fmt.Errorf("%w: data block %d: %v", ErrInvalidImage, i, err)
		}
	}

	root := -1
	for i := range inodes {
		if inodes[i].Type == record.TypeDirectory && inodes[i].Name == "/" {
			root = i
			break
		}
	}
	if root == -1 {
		return nil, fmt.Errorf("%w: no root directory found", ErrInvalidImage)
	}

	fsys := &Filesystem{
		imageID:  sb.ImageID,
		geometry: g,
		arena:    arena.FromTables(g, freeList, inodes, blocks),
		root:     root,
		log:      newLogger(),
	}
	fsys.log.WithField("path", path).Info("image loaded")
	return fsys, nil
}

func readAt(r backend.File, b []byte, off *int64) error {
	n, err := r.ReadAt(b, *off)
	if err != nil && n < len(b) {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	*off += int64(n)
	return nil
}
