// Package toyfs implements an in-memory, image-backed toy filesystem: a
// fixed-capacity pool of inodes and data blocks, serialized to and from a
// single binary image file, layered with a POSIX-flavored hierarchical
// namespace rooted at "/".
//
// toyfs makes no promises a real filesystem driver would: no multi-user
// permissions, no timestamps, no symlinks or hard links, no indirect
// blocks, no journaling, no crash consistency and no concurrent access
// from multiple goroutines against the same *Filesystem.
//
// A filesystem is built fresh with New, persisted with Dump and recovered
// with Load:
//
//	fsys, err := toyfs.New(record.DefaultGeometry(64))
//	err = fsys.Mkdir("/etc")
//	err = fsys.Mkfile("/etc/hosts")
//	_, err = fsys.WriteFile("/etc/hosts", []byte("127.0.0.1 localhost\n"))
//	err = fsys.Dump("/tmp/disk.img")
//	fsys2, err := toyfs.Load("/tmp/disk.img")
package toyfs
