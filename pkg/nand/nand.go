// Package nand derives boolean logic from a single NAND gate.
//
// Nand is the only function here that uses Go's boolean operators. Everything
// else is a composition of Nand, so any finite boolean function can be built
// the same way.
package nand

// Nand returns !(a && b).
func Nand(a, b bool) bool { return !(a && b) }

// Not returns Nand(a, a).
func Not(a bool) bool { return Nand(a, a) }

// And returns Not(Nand(a, b)).
func And(a, b bool) bool { return Not(Nand(a, b)) }

// Or returns Nand(Not(a), Not(b)).
func Or(a, b bool) bool { return Nand(Not(a), Not(b)) }

// If returns b when a is true and c otherwise, computed as
// Or(And(a, b), And(Not(a), c)).
func If(a, b, c bool) bool { return Or(And(a, b), And(Not(a), c)) }

// Not2 is Not derived through If instead of directly from Nand.
func Not2(a bool) bool { return If(a, false, true) }

// Xor is exclusive or, written as a chain of If on every input combination.
func Xor(a, b bool) bool {
	return If(And(Not(a), Not(b)), false,
		If(And(Not(a), b), true,
			If(And(a, Not(b)), true,
				If(And(a, b), false,
					false))))
}
