package kgroup

import (
	"slices"
	"testing"
)

func TestFromSlice_Empty(t *testing.T) {
	if head := FromSlice([]int{}); head != nil {
		t.Fatalf("got %v, want nil", head)
	}
	if got := Values[int](nil); got != nil {
		t.Fatalf("Values(nil): got %v, want nil", got)
	}
	if got := Len[int](nil); got != 0 {
		t.Fatalf("Len(nil): got %d, want 0", got)
	}
}

func TestFromSlice_KeepsOrder(t *testing.T) {
	in := []string{"x", "y", "z"}
	head := FromSlice(in)
	if got := Values(head); !slices.Equal(got, in) {
		t.Fatalf("got %v, want %v", got, in)
	}
	if got := Len(head); got != 3 {
		t.Fatalf("Len: got %d, want 3", got)
	}
	last := head.Next.Next
	if last.Next != nil {
		t.Fatal("last node must terminate the list")
	}
}
