package church

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.lambda.sh/pkg/tt"
)

func sum(x any, acc int) int { return x.(int) + acc }

func TestReduce_Empty(t *testing.T) {
	if got := Reduce(sum)(42)(Nil); got != 42 {
		t.Errorf("Reduce(sum)(42)(Nil) = %d, want 42", got)
	}
	never := func(any, string) string {
		t.Errorf("combiner called on empty list")
		return ""
	}
	if got := Reduce(never)("init")(Nil); got != "init" {
		t.Errorf("Reduce(never)(init)(Nil) = %q, want init", got)
	}
}

func TestReduce_Sum(t *testing.T) {
	if got := Reduce(sum)(0)(Encode([]int{1, 2, 3})); got != 6 {
		t.Errorf("sum of [1 2 3] = %d, want 6", got)
	}
}

func TestReduce_RebuildsInOrder(t *testing.T) {
	prepend := func(x any, acc []any) []any { return append([]any{x}, acc...) }
	got := Reduce(prepend)(nil)(Encode([]int{1, 2, 3}))
	if diff := cmp.Diff([]any{1, 2, 3}, got); diff != "" {
		t.Errorf("rebuilt list (-want +got):\n%s", diff)
	}

	rebuilt := Reduce(Cons)(Nil)(ThreeBooleans)
	var bools []bool
	for _, b := range ToSlice(rebuilt) {
		bools = append(bools, EvalBool(b.(Fn)))
	}
	if diff := cmp.Diff([]bool{true, false, true}, bools); diff != "" {
		t.Errorf("Reduce(Cons)(Nil)(ThreeBooleans) (-want +got):\n%s", diff)
	}
}

func TestReduce_IsRightFold(t *testing.T) {
	show := func(x any, acc string) string {
		return "f(" + strconv.Itoa(x.(int)) + ", " + acc + ")"
	}
	got := Reduce(show)("init")(Encode([]int{1, 2, 3}))
	if want := "f(1, f(2, f(3, init)))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	sub := func(x any, acc int) int { return x.(int) - acc }
	// 1 - (2 - (3 - 0)); a left fold would give ((0 - 1) - 2) - 3 = -6.
	if got := Reduce(sub)(0)(Encode([]int{1, 2, 3})); got != 2 {
		t.Errorf("right fold of subtraction = %d, want 2", got)
	}
}

func TestLen(t *testing.T) {
	tt.Test(t, tt.NamedFn("Len", Len),
		tt.Args(Nil).Rets(0),
		tt.Args(ThreeBooleans).Rets(3),
		tt.Args(Encode(make([]int, 100))).Rets(100),
	)
}
