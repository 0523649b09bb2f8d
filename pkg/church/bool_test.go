package church

import (
	"testing"

	"src.lambda.sh/pkg/tt"
)

func evalUnary(op func(Fn) Fn) func(bool) bool {
	return func(a bool) bool { return EvalBool(op(FromBool(a))) }
}

func evalBinary(op func(Fn, Fn) Fn) func(bool, bool) bool {
	return func(a, b bool) bool { return EvalBool(op(FromBool(a), FromBool(b))) }
}

func TestBoolLiterals(t *testing.T) {
	tt.Test(t, tt.NamedFn("EvalBool", EvalBool),
		tt.Args(True).Rets(true),
		tt.Args(False).Rets(false),
	)
	if got := True.Call("x", "y"); got != "x" {
		t.Errorf("True(x)(y) = %v, want x", got)
	}
	if got := False.Call("x", "y"); got != "y" {
		t.Errorf("False(x)(y) = %v, want y", got)
	}
}

func TestNot(t *testing.T) {
	tt.Test(t, tt.NamedFn("Not", evalUnary(Not)),
		tt.Args(true).Rets(false),
		tt.Args(false).Rets(true),
	)
}

func TestBinaryOperators(t *testing.T) {
	ops := []struct {
		name   string
		op     func(Fn, Fn) Fn
		native func(a, b bool) bool
	}{
		{"And", And, func(a, b bool) bool { return a && b }},
		{"Or", Or, func(a, b bool) bool { return a || b }},
		{"Xor", Xor, func(a, b bool) bool { return a != b }},
		{"Nand", Nand, func(a, b bool) bool { return !(a && b) }},
	}
	for _, op := range ops {
		var cases []*tt.Case
		for _, a := range []bool{false, true} {
			for _, b := range []bool{false, true} {
				cases = append(cases, tt.Args(a, b).Rets(op.native(a, b)))
			}
		}
		tt.Test(t, tt.NamedFn(op.name, evalBinary(op.op)), cases...)
	}
}

func TestIf_EvaluatesBothBranches(t *testing.T) {
	evaluated := 0
	branch := func(v string) string {
		evaluated++
		return v
	}
	got := If(True).Call(branch("then"), branch("else"))
	if got != "then" {
		t.Errorf("If(True)(then)(else) = %v, want then", got)
	}
	if evaluated != 2 {
		t.Errorf("evaluated %d branches, want 2", evaluated)
	}
}

func TestIfElse_EvaluatesSelectedBranchOnly(t *testing.T) {
	var evaluated []string
	branch := func(v string) func() string {
		return func() string {
			evaluated = append(evaluated, v)
			return v
		}
	}

	if got := IfElse(True, branch("then"), branch("else")); got != "then" {
		t.Errorf("IfElse(True) = %q, want then", got)
	}
	if got := IfElse(False, branch("then"), branch("else")); got != "else" {
		t.Errorf("IfElse(False) = %q, want else", got)
	}
	if len(evaluated) != 2 || evaluated[0] != "then" || evaluated[1] != "else" {
		t.Errorf("evaluated %v, want [then else]", evaluated)
	}
}

func TestCall_PanicsOnNonFunction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("applying a string did not panic")
		}
	}()
	True.Call("x", "y", "z")
}
