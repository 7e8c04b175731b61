// Package arena owns the three parallel fixed-length tables that back a
// toyfs image: the free-list, the inode table and the data-block table.
// It exposes allocate/free for inode slots and for data-block slots, plus
// indexed access, mirroring the allocator idiom of
// github.com/diskfs/go-diskfs/filesystem/fat32's table.go (linear scan,
// lowest-index-wins) and the API shape of util/bitmap.Bitmap, adapted from
// bit-packed storage to the byte-per-slot layout spec.md section 6 requires
// on the wire.
package arena

import "fmt"

// FreeList is one byte per slot: 1 means free, 0 means used. Unlike
// util/bitmap.Bitmap, it is not bit-packed — the wire format the codec
// writes is a flat array of bytes, and packing/unpacking on every access
// would just be wasted work for a structure this size.
type FreeList struct {
	slots []byte
}

// NewFreeList creates a free-list of n slots, all marked free.
func NewFreeList(n int) *FreeList {
	fl := &FreeList{slots: make([]byte, n)}
	for i := range fl.slots {
		fl.slots[i] = 1
	}
	return fl
}

// FromBytes wraps an existing slice of free-list bytes (as read from an
// image) without copying semantics beyond what the caller already owns.
func FromBytes(b []byte) *FreeList {
	return &FreeList{slots: b}
}

// Bytes returns the raw underlying free-list bytes, as the codec writes them.
func (fl *FreeList) Bytes() []byte {
	return fl.slots
}

// Len returns the number of slots.
func (fl *FreeList) Len() int {
	return len(fl.slots)
}

// IsFree reports whether slot i is marked free.
func (fl *FreeList) IsFree(i int) (bool, error) {
	if i < 0 || i >= len(fl.slots) {
		return false, fmt.Errorf("freelist: index %d out of range [0,%d)", i, len(fl.slots))
	}
	return fl.slots[i] == 1, nil
}

// SetFree marks slot i free.
func (fl *FreeList) SetFree(i int) error {
	if i < 0 || i >= len(fl.slots) {
		return fmt.Errorf("freelist: index %d out of range [0,%d)", i, len(fl.slots))
	}
	fl.slots[i] = 1
	return nil
}

// SetUsed marks slot i used.
func (fl *FreeList) SetUsed(i int) error {
	if i < 0 || i >= len(fl.slots) {
		return fmt.Errorf("freelist: index %d out of range [0,%d)", i, len(fl.slots))
	}
	fl.slots[i] = 0
	return nil
}

// FirstFree returns the lowest-indexed free slot at or after start, or -1
// if none exists. Lowest-index-wins is required for deterministic tests
// (spec.md section 4.2).
func (fl *FreeList) FirstFree(start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(fl.slots); i++ {
		if fl.slots[i] == 1 {
			return i
		}
	}
	return -1
}

// CountFree returns the number of free slots.
func (fl *FreeList) CountFree() int {
	n := 0
	for _, b := range fl.slots {
		if b == 1 {
			n++
		}
	}
	return n
}
