package arena

import "testing"

func TestFreeListFirstFree(t *testing.T) {
	fl := NewFreeList(4)
	if got := fl.FirstFree(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if err := fl.SetUsed(0); err != nil {
		t.Fatalf("set used: %v", err)
	}
	if err := fl.SetUsed(1); err != nil {
		t.Fatalf("set used: %v", err)
	}
	if got := fl.FirstFree(0); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := fl.CountFree(); got != 2 {
		t.Fatalf("expected 2 free, got %d", got)
	}
}

func TestFreeListExhausted(t *testing.T) {
	fl := NewFreeList(2)
	_ = fl.SetUsed(0)
	_ = fl.SetUsed(1)
	if got := fl.FirstFree(0); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestFreeListOutOfRange(t *testing.T) {
	fl := NewFreeList(2)
	if _, err := fl.IsFree(5); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if err := fl.SetUsed(-1); err == nil {
		t.Fatal("expected out-of-range error")
	}
}
