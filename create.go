package toyfs

import (
	"fmt"
	"os"

	"github.com/go-toyfs/toyfs/internal/record"
)

// Create builds a fresh filesystem with the given geometry and
// immediately dumps it to a new image file at path. path must not
// already exist.
func Create(path string, g record.Geometry) (*Filesystem, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}

	fsys, err := New(g)
	if err != nil {
		return nil, err
	}
	if err := fsys.Dump(path); err != nil {
		return nil, err
	}
	return fsys, nil
}
