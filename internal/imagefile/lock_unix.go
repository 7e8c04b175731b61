//go:build linux || darwin || freebsd || netbsd || openbsd

package imagefile

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Lock takes an advisory flock(2) on fd and returns a function that
// releases it. Grounded on golang.org/x/sys/unix.IoctlGetInt's use in
// diskfs_darwin.go/diskfs.go for low-level, OS-specific file descriptor
// operations — here used for LOCK_EX/LOCK_SH rather than an ioctl.
func Lock(fd uintptr, kind LockKind) (unlock func() error, err error) {
	how := unix.LOCK_SH
	if kind == LockExclusive {
		how = unix.LOCK_EX
	}
	if err := unix.Flock(int(fd), how); err != nil {
		return nil, fmt.Errorf("imagefile: flock: %w", err)
	}
	return func() error {
		if err := unix.Flock(int(fd), unix.LOCK_UN); err != nil {
			return fmt.Errorf("imagefile: unlock: %w", err)
		}
		return nil
	}, nil
}
