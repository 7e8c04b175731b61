package toyfs

import "github.com/go-toyfs/toyfs/internal/record"

// Mkfile creates an empty regular file at path. See Mkdir for the shared
// parent-resolution and conflict rules.
func (fsys *Filesystem) Mkfile(path string) error {
	if _, err := fsys.createEntry(path, record.TypeFile); err != nil {
		return err
	}
	fsys.log.WithField("path", path).Debug("mkfile")
	return nil
}
