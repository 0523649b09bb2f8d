// Package goldbach searches for a counterexample to Goldbach's conjecture,
// which states that every even integer greater than 2 is the sum of two
// primes.
//
// An unbounded Search halts if and only if the conjecture is false.
package goldbach

// IsPrime reports whether n is prime, by trial division.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Witness returns primes p <= q with p + q == n, choosing the smallest p. The
// last return value is false if no such primes exist.
func Witness(n int) (p, q int, ok bool) {
	for p := 2; p <= n/2; p++ {
		if IsPrime(p) && IsPrime(n-p) {
			return p, n - p, true
		}
	}
	return 0, 0, false
}
