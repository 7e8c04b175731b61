package toyfs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-toyfs/toyfs"
	"github.com/go-toyfs/toyfs/internal/record"
)

func testGeometry() record.Geometry {
	return record.Geometry{NumBlocks: 16, NameMax: 32, DirectBlocks: 8, BlockSize: 8}
}

func TestMkdirAndList(t *testing.T) {
	fsys, err := toyfs.New(testGeometry())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := fsys.Mkdir("/a"); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	listing, err := fsys.List("/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if listing != "DIR a\n" {
		t.Fatalf("listing = %q, want %q", listing, "DIR a\n")
	}
}

func TestMkdirDuplicateRejected(t *testing.T) {
	fsys, _ := toyfs.New(testGeometry())
	if err := fsys.Mkdir("/a"); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	err := fsys.Mkdir("/a")
	if !errors.Is(err, toyfs.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
	listing, _ := fsys.List("/")
	if listing != "DIR a\n" {
		t.Fatalf("listing changed after rejected mkdir: %q", listing)
	}
}

func TestWriteFileAcrossBlockBoundary(t *testing.T) {
	fsys, _ := toyfs.New(testGeometry())
	if err := fsys.Mkdir("/a"); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := fsys.Mkfile("/a/b.txt"); err != nil {
		t.Fatalf("Mkfile: %v", err)
	}

	n, err := fsys.WriteFile("/a/b.txt", []byte("hello"))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if n != 5 {
		t.Fatalf("n = %d, want 5", n)
	}
	data, err := fsys.ReadFile("/a/b.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("data = %q, want %q", data, "hello")
	}

	n, err = fsys.WriteFile("/a/b.txt", []byte("-world!!"))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if n != 8 {
		t.Fatalf("n = %d, want 8", n)
	}
	data, err = fsys.ReadFile("/a/b.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello-world!!" {
		t.Fatalf("data = %q, want %q", data, "hello-world!!")
	}
}

func TestRemoveReleasesWholeSubtree(t *testing.T) {
	fsys, _ := toyfs.New(testGeometry())
	if err := fsys.Mkdir("/a"); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := fsys.Mkfile("/a/b.txt"); err != nil {
		t.Fatalf("Mkfile: %v", err)
	}
	if _, err := fsys.WriteFile("/a/b.txt", []byte("hello")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := fsys.Remove("/a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	listing, err := fsys.List("/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if listing != "" {
		t.Fatalf("listing = %q, want empty", listing)
	}

	var nfe *toyfs.NotFoundError
	if _, err := fsys.ReadFile("/a/b.txt"); !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}

	// The root directory's own inode permanently holds one ticket, so a
	// fully cleaned-up tree frees every slot except that one.
	if got, want := fsys.FreeBlocks(), testGeometry().NumBlocks-1; got != want {
		t.Fatalf("FreeBlocks = %d, want %d", got, want)
	}
}

func TestRemoveRootRejected(t *testing.T) {
	fsys, _ := toyfs.New(testGeometry())
	if err := fsys.Remove("/"); !errors.Is(err, toyfs.ErrBadPath) {
		t.Fatalf("err = %v, want ErrBadPath", err)
	}
}

func TestDumpLoadRoundTrip(t *testing.T) {
	image := filepath.Join(t.TempDir(), "disk.img")

	fsys, err := toyfs.Create(image, testGeometry())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := fsys.Mkdir("/x"); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := fsys.Mkdir("/x/y"); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := fsys.Mkfile("/x/y/z"); err != nil {
		t.Fatalf("Mkfile: %v", err)
	}
	if err := fsys.Dump(image); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	reloaded, err := toyfs.Load(image)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	listing, err := reloaded.List("/x/y")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if listing != "FIL z\n" {
		t.Fatalf("listing = %q, want %q", listing, "FIL z\n")
	}
	if reloaded.ImageID() != fsys.ImageID() {
		t.Fatalf("image id changed across round trip")
	}
}

func TestCreateRefusesExistingPath(t *testing.T) {
	image := filepath.Join(t.TempDir(), "disk.img")
	if _, err := toyfs.Create(image, testGeometry()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := toyfs.Create(image, testGeometry()); !errors.Is(err, toyfs.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fsys, _ := toyfs.New(testGeometry())
	if _, err := fsys.Import("/src.txt", src); err != nil {
		t.Fatalf("Import: %v", err)
	}

	dst := filepath.Join(dir, "dst.txt")
	if err := fsys.Export("/src.txt", dst); err != nil {
		t.Fatalf("Export: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("got = %q, want %q", got, "payload")
	}
}

func TestExportRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(dst, []byte("existing"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fsys, _ := toyfs.New(testGeometry())
	if err := fsys.Mkfile("/f"); err != nil {
		t.Fatalf("Mkfile: %v", err)
	}
	if _, err := fsys.WriteFile("/f", []byte("new")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := fsys.Export("/f", dst); !errors.Is(err, toyfs.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestArenaExhaustion(t *testing.T) {
	fsys, _ := toyfs.New(record.Geometry{NumBlocks: 2, NameMax: 16, DirectBlocks: 2, BlockSize: 4})
	// One slot is the root; only one remains for this test's allocations.
	if err := fsys.Mkdir("/a"); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := fsys.Mkdir("/b"); !errors.Is(err, toyfs.ErrNoSpace) {
		t.Fatalf("err = %v, want ErrNoSpace", err)
	}
}
