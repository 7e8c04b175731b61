package pathutil

import (
	"errors"
	"testing"

	"github.com/go-toyfs/toyfs/internal/arena"
	"github.com/go-toyfs/toyfs/internal/record"
)

// buildTree creates root -> a (dir) -> b.txt (file), returning the arena
// and the indices of root, a and b.txt.
func buildTree(t *testing.T) (a *arena.Arena, root, dirA, fileB int) {
	t.Helper()
	g := record.Geometry{NumBlocks: 8, NameMax: 16, DirectBlocks: 4, BlockSize: 8}
	ar := arena.New(g)

	root, err := ar.AllocInode()
	if err != nil {
		t.Fatalf("alloc root: %v", err)
	}
	ar.Inodes[root].Type = record.TypeDirectory
	ar.Inodes[root].Name = "/"
	ar.Inodes[root].Parent = record.NoEntry

	dirA, err = ar.AllocInode()
	if err != nil {
		t.Fatalf("alloc a: %v", err)
	}
	ar.Inodes[dirA].Type = record.TypeDirectory
	ar.Inodes[dirA].Name = "a"
	ar.Inodes[dirA].Parent = int32(root)
	ar.Inodes[root].DirectBlocks[0] = int32(dirA)

	fileB, err = ar.AllocInode()
	if err != nil {
		t.Fatalf("alloc b: %v", err)
	}
	ar.Inodes[fileB].Type = record.TypeFile
	ar.Inodes[fileB].Name = "b.txt"
	ar.Inodes[fileB].Parent = int32(dirA)
	ar.Inodes[dirA].DirectBlocks[0] = int32(fileB)

	return ar, root, dirA, fileB
}

func TestResolveRoot(t *testing.T) {
	a, root, _, _ := buildTree(t)
	got, err := Resolve(a, root, "/")
	if err != nil {
		t.Fatalf("Resolve(/): %v", err)
	}
	if got != root {
		t.Fatalf("Resolve(/) = %d, want root %d", got, root)
	}
}

func TestResolveNested(t *testing.T) {
	a, root, _, fileB := buildTree(t)
	got, err := Resolve(a, root, "/a/b.txt")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != fileB {
		t.Fatalf("Resolve(/a/b.txt) = %d, want %d", got, fileB)
	}
}

func TestResolveNotFound(t *testing.T) {
	a, root, _, _ := buildTree(t)
	_, err := Resolve(a, root, "/a/missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Component != "missing" {
		t.Fatalf("expected component 'missing', got %q", nf.Component)
	}
}

func TestResolveNotDirectory(t *testing.T) {
	a, root, _, _ := buildTree(t)
	_, err := Resolve(a, root, "/a/b.txt/c")
	var nd *NotDirectoryError
	if !errors.As(err, &nd) {
		t.Fatalf("expected NotDirectoryError, got %v", err)
	}
}

func TestResolveParentSingleComponent(t *testing.T) {
	a, root, _, _ := buildTree(t)
	parent, leaf, err := ResolveParent(a, root, "/newdir")
	if err != nil {
		t.Fatalf("ResolveParent: %v", err)
	}
	if parent != root || leaf != "newdir" {
		t.Fatalf("got parent=%d leaf=%q, want root=%d", parent, leaf, root)
	}
}

func TestResolveParentNested(t *testing.T) {
	a, root, dirA, _ := buildTree(t)
	parent, leaf, err := ResolveParent(a, root, "/a/newfile")
	if err != nil {
		t.Fatalf("ResolveParent: %v", err)
	}
	if parent != dirA || leaf != "newfile" {
		t.Fatalf("got parent=%d leaf=%q, want dirA=%d", parent, leaf, dirA)
	}
}
