// Package hostio wraps the host-side file operations that toyfs's
// Import/Export and CopyTree use to move bytes between the real
// filesystem and a toyfs image. Adapted from
// github.com/diskfs/go-diskfs/sync's CopyFileSystem/copyDir/copyOneFile,
// stripped of the symlink, timestamp and partition handling that toyfs
// images have no use for.
package hostio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrAlreadyExists reports that the host path hostio was asked to create
// already exists.
var ErrAlreadyExists = errors.New("hostio: already exists")

// ReadFile reads the entire contents of the host file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hostio: read %s: %w", path, err)
	}
	return data, nil
}

// WriteFileExclusive creates a new host file at path containing data. It
// refuses to overwrite: if path already exists, it returns
// ErrAlreadyExists and leaves the existing file untouched.
func WriteFileExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("hostio: %s: %w", path, ErrAlreadyExists)
		}
		return fmt.Errorf("hostio: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("hostio: write %s: %w", path, err)
	}
	return nil
}
