// Package imagefile provides advisory locking around an open image file
// descriptor. It is the one concession the ambient stack makes to spec.md
// section 5's "external mutation of the image file while the process
// holds an in-memory copy is undefined": Dump and Load take an advisory
// flock for their duration. The lock is blocking, so a second process
// that also uses flock on the same image waits until the first releases
// it; it does not get an error. Dump and Load proceed without the lock if
// it cannot be taken, and do not report that. No in-process locking is
// added; spec.md remains single-threaded and synchronous.
package imagefile

// LockKind selects the flock(2) mode to request.
type LockKind int

const (
	// LockShared is taken for Load: concurrent readers are fine.
	LockShared LockKind = iota
	// LockExclusive is taken for Dump: only one writer at a time.
	LockExclusive
)
