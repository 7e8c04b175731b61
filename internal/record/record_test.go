package record

import (
	"testing"

	"github.com/google/uuid"
)

func TestSuperblockRoundTrip(t *testing.T) {
	want := Superblock{
		ImageID:    uuid.New(),
		Geometry:   DefaultGeometry(16),
		FreeBlocks: 16,
	}
	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(b) != SuperblockSize {
		t.Fatalf("marshal: got %d bytes, want %d", len(b), SuperblockSize)
	}

	var got Superblock
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestInodeRoundTrip(t *testing.T) {
	g := Geometry{NumBlocks: 16, NameMax: 8, DirectBlocks: 4, BlockSize: 8}
	want := NewFree(g)
	want.Type = TypeDirectory
	want.Name = "abc"
	want.Parent = 3
	want.DirectBlocks[0] = 5
	want.DirectBlocks[1] = 7

	b, err := want.MarshalBinary(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(b) != g.InodeSize() {
		t.Fatalf("marshal: got %d bytes, want %d", len(b), g.InodeSize())
	}

	var got Inode
	if err := got.UnmarshalBinary(g, b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Type != want.Type || got.Name != want.Name || got.Parent != want.Parent {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
	for i := range want.DirectBlocks {
		if got.DirectBlocks[i] != want.DirectBlocks[i] {
			t.Fatalf("direct_blocks[%d]: got %d, want %d", i, got.DirectBlocks[i], want.DirectBlocks[i])
		}
	}
}

func TestInodeNameTooLong(t *testing.T) {
	g := Geometry{NumBlocks: 4, NameMax: 4, DirectBlocks: 2, BlockSize: 8}
	n := NewFree(g)
	n.Name = "toolong"
	if _, err := n.MarshalBinary(g); err == nil {
		t.Fatal("expected error for name exceeding name_max")
	}
}

func TestDataBlockRoundTrip(t *testing.T) {
	g := Geometry{NumBlocks: 4, NameMax: 8, DirectBlocks: 2, BlockSize: 8}
	want := NewFreeBlock(g)
	copy(want.Data, []byte("hello"))
	want.Size = 5

	b, err := want.MarshalBinary(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got DataBlock
	if err := got.UnmarshalBinary(g, b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Size != want.Size || string(got.Data[:got.Size]) != "hello" {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
}
