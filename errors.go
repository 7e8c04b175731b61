package toyfs

import (
	"errors"

	"github.com/go-toyfs/toyfs/internal/arena"
	"github.com/go-toyfs/toyfs/internal/pathutil"
)

// Sentinel and typed errors corresponding 1:1 to spec.md section 7's
// abstract error kinds. Propagation follows the teacher's convention in
// filesystem/filesystem.go: sentinels for the errors.Is-checkable cases,
// typed errors where the caller needs the offending path component.
var (
	// ErrIOError reports that underlying host file I/O failed.
	ErrIOError = errors.New("toyfs: I/O error")
	// ErrInvalidImage reports that a loaded image is structurally unusable.
	ErrInvalidImage = errors.New("toyfs: invalid image")
	// ErrBadPath reports a non-empty path that does not start with "/", or
	// a path that targets the root where disallowed. Over-long names are
	// reported with ErrNameTooLong instead.
	ErrBadPath = pathutil.ErrBadPath
	// ErrAlreadyExists reports a sibling with the same name already present.
	ErrAlreadyExists = errors.New("toyfs: already exists")
	// ErrNoSpace reports that the arena has no free inode or data block.
	ErrNoSpace = arena.ErrNoSpace
	// ErrDirFull reports that the parent directory has no free direct-block slot.
	ErrDirFull = errors.New("toyfs: directory full")
	// ErrIsFile reports a type mismatch where a directory was required.
	ErrIsFile = errors.New("toyfs: is a file")
	// ErrIsDirectory reports a type mismatch where a regular file was required.
	ErrIsDirectory = errors.New("toyfs: is a directory")
	// ErrNameTooLong reports a new entry's name whose length is NameMax
	// bytes or more.
	ErrNameTooLong = errors.New("toyfs: name too long")
)

// NotFoundError reports that a path component does not exist.
type NotFoundError = pathutil.NotFoundError

// NotDirectoryError reports that a non-terminal path component is a
// regular file.
type NotDirectoryError = pathutil.NotDirectoryError
