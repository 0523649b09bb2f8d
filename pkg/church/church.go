// Package church represents booleans, pairs and lists purely as functions.
//
// Every encoded value is an Fn, a curried function of one argument. A boolean
// selects one of two arguments, a pair hands its two components to a
// function, and a list is either Nil or a pair of a head and another list.
// Nothing here is efficient; the package exists to show that computation
// needs no built-in data types.
package church

import "fmt"

// Fn is a curried function of one argument.
type Fn func(any) any

// Call applies f to each of args in turn, as in f(args[0])(args[1])... . Every
// intermediate result must be an Fn.
func (f Fn) Call(args ...any) any {
	var v any = f
	for _, arg := range args {
		v = asFn(v)(arg)
	}
	return v
}

func asFn(v any) Fn {
	switch v := v.(type) {
	case Fn:
		return v
	case func(any) any:
		return v
	default:
		panic(fmt.Sprintf("church: cannot apply value of type %T", v))
	}
}
