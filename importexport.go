package toyfs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-toyfs/toyfs/hostio"
)

// Import reads extPath from the host filesystem and stores it as a new
// regular file at intPath. If intPath already exists, it fails with
// ErrAlreadyExists without touching the host file. A write that runs out
// of space stops early; the created inode is not rolled back, matching
// WriteFile's non-atomicity.
func (fsys *Filesystem) Import(intPath, extPath string) (int, error) {
	data, err := hostio.ReadFile(extPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if err := fsys.Mkfile(intPath); err != nil {
		return 0, err
	}
	n, err := fsys.WriteFile(intPath, data)
	if err != nil {
		return n, err
	}
	fsys.log.WithField("int_path", intPath).WithField("ext_path", extPath).Debug("import")
	return n, nil
}

// Export reads intPath from the image and writes its full contents to a
// new host file at extPath. It refuses to overwrite an existing extPath.
func (fsys *Filesystem) Export(intPath, extPath string) error {
	data, err := fsys.ReadFile(intPath)
	if err != nil {
		return err
	}
	if err := hostio.WriteFileExclusive(extPath, data); err != nil {
		if errors.Is(err, hostio.ErrAlreadyExists) {
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	fsys.log.WithField("int_path", intPath).WithField("ext_path", extPath).Debug("export")
	return nil
}

// ImportTree imports every regular file and directory reachable from src
// (rooted at its ".") into the image, mirroring its structure under "/".
func (fsys *Filesystem) ImportTree(src fs.FS) error {
	if err := hostio.CopyTree(src, fsys); err != nil {
		return err
	}
	fsys.log.Debug("import-tree")
	return nil
}
