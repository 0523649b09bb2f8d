// Package fix implements anonymous recursion.
//
// The centerpiece is Recurse, a fixed-point combinator. It takes a generator,
// a function that builds the recursive function given a reference to the
// finished result, and returns that result. No part of the construction binds
// a name to itself; recursion comes entirely from self-application.
//
// Go evaluates arguments eagerly, so the classical Y combinator
//
//	Y = λf.(λx.f(x x))(λx.f(x x))
//
// expands forever before doing any work. Recurse uses the eta-expanded form
// (often called the Z combinator), where x x is wrapped in a function of the
// actual argument and is only evaluated when that argument is supplied.
//
// Ordinary Go code should simply use named recursion; see NamedFactorial.
package fix

// Recurse returns the fixed point of the generator f: a function g such that
// g(a) == f(g)(a) for every a.
//
// Recurse does not add any termination guarantee. If f calls self
// unconditionally, calling the result never returns (in practice, the
// goroutine runs out of stack).
func Recurse[A, R any](f func(self func(A) R) func(A) R) func(A) R {
	h := func(x selfApplicable[A, R]) func(A) R {
		return f(func(a A) R { return x(x)(a) })
	}
	return h(h)
}

// A function that can be applied to itself.
type selfApplicable[A, R any] func(selfApplicable[A, R]) func(A) R
