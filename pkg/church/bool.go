package church

// Booleans select one of two curried arguments.
var (
	// True returns its first argument: λx.λy.x.
	True Fn = func(x any) any { return Fn(func(any) any { return x }) }
	// False returns its second argument: λx.λy.y.
	False Fn = func(any) any { return Fn(func(y any) any { return y }) }
)

// Not returns b(False)(True).
func Not(b Fn) Fn { return asFn(b.Call(False, True)) }

// And returns b1(b2)(False).
func And(b1, b2 Fn) Fn { return asFn(b1.Call(b2, False)) }

// Or returns b1(True)(b2).
func Or(b1, b2 Fn) Fn { return asFn(b1.Call(True, b2)) }

// Xor returns b1(Not(b2))(b2).
func Xor(b1, b2 Fn) Fn { return asFn(b1.Call(Not(b2), b2)) }

// Nand returns Not(And(b1, b2)). Like NAND gates, it is enough to derive every
// other boolean function.
func Nand(b1, b2 Fn) Fn { return Not(And(b1, b2)) }

// If returns b itself; If(b).Call(x, y) selects x when b is True and y
// otherwise.
//
// Both x and y are evaluated before If gets to choose, since Go evaluates
// arguments eagerly. It cannot guard a recursive call; use IfElse for that.
func If(b Fn) Fn { return b }

// IfElse uses b to select one of two thunks and evaluates only the selected
// one.
func IfElse[T any](b Fn, then, otherwise func() T) T {
	return b.Call(then, otherwise).(func() T)()
}

// EvalBool converts an encoded boolean to a Go bool.
func EvalBool(b Fn) bool { return b.Call(true, false).(bool) }

// FromBool converts a Go bool to an encoded boolean.
func FromBool(v bool) Fn {
	if v {
		return True
	}
	return False
}
