package pathutil

import (
	"fmt"

	"github.com/go-toyfs/toyfs/internal/arena"
	"github.com/go-toyfs/toyfs/internal/record"
)

// NotFoundError reports that component could not be found among its
// parent's children, per spec.md section 4.3's NotFound(component).
type NotFoundError struct {
	Component string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pathutil: component %q not found", e.Component)
}

// NotDirectoryError reports that component resolved to a regular file but
// further path components remained, per spec.md section 4.3's
// NotDirectory(component).
type NotDirectoryError struct {
	Component string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("pathutil: component %q is not a directory", e.Component)
}

// findChild scans parent's direct blocks for a child inode named name,
// returning its index or -1 if absent.
func findChild(a *arena.Arena, parent int, name string) int {
	p := &a.Inodes[parent]
	for _, c := range p.DirectBlocks {
		if c == record.NoEntry {
			continue
		}
		child := &a.Inodes[int(c)]
		if child.Type == record.TypeFree {
			continue // stale slot; should not occur given the invariants
		}
		if child.Name == name {
			return int(c)
		}
	}
	return -1
}

// Resolve walks path from root, matching child names within each parent's
// direct blocks, and returns the terminal inode index. An empty path (or
// "/") resolves to root.
func Resolve(a *arena.Arena, root int, path string) (int, error) {
	components, err := Split(path)
	if err != nil {
		return 0, err
	}
	cur := root
	for i, c := range components {
		next := findChild(a, cur, c)
		if next == -1 {
			return 0, &NotFoundError{Component: c}
		}
		if a.Inodes[next].Type != record.TypeDirectory && i != len(components)-1 {
			return 0, &NotDirectoryError{Component: c}
		}
		cur = next
	}
	return cur, nil
}

// ResolveParent splits off path's final component and resolves the prefix
// as a directory, returning the parent's inode index and the leaf name.
func ResolveParent(a *arena.Arena, root int, path string) (int, string, error) {
	parentParts, leaf, err := SplitParent(path)
	if err != nil {
		return 0, "", err
	}
	parent, err := Resolve(a, root, Join(parentParts))
	if err != nil {
		return 0, "", err
	}
	if a.Inodes[parent].Type != record.TypeDirectory {
		return 0, "", &NotDirectoryError{Component: a.Inodes[parent].Name}
	}
	return parent, leaf, nil
}
