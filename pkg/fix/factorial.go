package fix

// NamedFactorial computes n! with ordinary named recursion. It returns 1 for
// all n < 1.
func NamedFactorial(n int) int {
	if n < 1 {
		return 1
	}
	return n * NamedFactorial(n-1)
}

// Factorial computes n! without referring to itself by name: the recursive
// step receives itself as an explicit argument on every call. It returns 1 for
// all n < 1.
func Factorial(n int) int {
	return factorialStep(factorialStep, n)
}

type selfPassing func(self selfPassing, n int) int

var factorialStep selfPassing = func(self selfPassing, n int) int {
	if n < 1 {
		return 1
	}
	return n * self(self, n-1)
}

// FactorialGenerator is the generator whose fixed point is factorial.
func FactorialGenerator(self func(int) int) func(int) int {
	return func(n int) int {
		if n < 1 {
			return 1
		}
		return n * self(n-1)
	}
}

// YFactorial computes n! as the fixed point of FactorialGenerator. It returns 1
// for all n < 1.
var YFactorial = Recurse(FactorialGenerator)
