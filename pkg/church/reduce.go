package church

import "src.lambda.sh/pkg/fix"

// Reduce folds a list from the right. Reduce(f)(init) applied to [a, b, c]
// returns f(a, f(b, f(c, init))); applied to Nil it returns init.
//
// The recursion comes from fix.Recurse; the base case is guarded with IfElse
// so that the recursive branch is only evaluated for a non-empty list.
func Reduce[R any](combine func(x any, acc R) R) func(init R) func(l Fn) R {
	return fix.Recurse(reduceGenerator[R])(combine)
}

func reduceGenerator[R any](self func(func(any, R) R) func(R) func(Fn) R) func(func(any, R) R) func(R) func(Fn) R {
	return func(combine func(any, R) R) func(R) func(Fn) R {
		return func(init R) func(Fn) R {
			return func(l Fn) R {
				return IfElse(IsEmpty(l),
					func() R { return init },
					func() R { return combine(Fst(l), self(combine)(init)(Rest(l))) })
			}
		}
	}
}

// Len returns the number of elements of a list.
func Len(l Fn) int {
	return Reduce(func(_ any, n int) int { return n + 1 })(0)(l)
}
