package list

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmpty(t *testing.T) {
	l := Empty[int]()
	if l.Len() != 0 {
		t.Errorf("Empty().Len() = %d, want 0", l.Len())
	}
	if l.First() != 0 {
		t.Errorf("Empty().First() = %d, want zero value", l.First())
	}
	if l.Rest() != l {
		t.Errorf("Empty().Rest() is not the list itself")
	}
}

func TestCons(t *testing.T) {
	base := Of("b", "c")
	l1 := base.Cons("a")
	l2 := base.Cons("x")

	if diff := cmp.Diff([]string{"a", "b", "c"}, Slice(l1)); diff != "" {
		t.Errorf("l1 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "b", "c"}, Slice(l2)); diff != "" {
		t.Errorf("l2 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "c"}, Slice(base)); diff != "" {
		t.Errorf("base modified (-want +got):\n%s", diff)
	}
	if l1.Rest() != l2.Rest() {
		t.Errorf("l1 and l2 do not share their tail")
	}
}

func TestSlice_Empty(t *testing.T) {
	if got := Slice(Of[int]()); len(got) != 0 {
		t.Errorf("Slice(Of()) = %v, want empty", got)
	}
}
