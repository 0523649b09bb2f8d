package church

import (
	"fmt"
	"reflect"

	"src.lambda.sh/pkg/errutil"
	"src.lambda.sh/pkg/persistent/list"
)

// Pair returns λf.f(x)(y).
func Pair(x, y any) Fn {
	return func(f any) any { return asFn(f).Call(x, y) }
}

// Fst returns the first component of a pair.
func Fst(p Fn) any { return p(True) }

// Snd returns the second component of a pair.
func Snd(p Fn) any { return p(False) }

// Nil is the empty list. It ignores its argument and returns True.
var Nil Fn = func(any) any { return True }

var alwaysFalse Fn = func(any) any { return Fn(func(any) any { return False }) }

// IsEmpty returns True for Nil and False for a pair.
func IsEmpty(l Fn) Fn { return asFn(l(alwaysFalse)) }

// Cons returns a list with x in front of l.
func Cons(x any, l Fn) Fn { return Pair(x, l) }

// Rest returns the second component of a pair as a list.
func Rest(l Fn) Fn { return asFn(Snd(l)) }

// ThreeBooleans is the list [True, False, True].
var ThreeBooleans = Cons(True, Cons(False, Cons(True, Nil)))

// FromSlice encodes a slice as a list.
func FromSlice(xs []any) Fn {
	return Encode(xs)
}

// ToSlice decodes a list to a slice. It returns nil for Nil.
func ToSlice(l Fn) []any {
	var xs []any
	for !EvalBool(IsEmpty(l)) {
		xs = append(xs, Fst(l))
		l = Rest(l)
	}
	return xs
}

// Encode encodes a slice as a list.
func Encode[T any](xs []T) Fn {
	l := Nil
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// Decode decodes a list whose elements all have type T. If T is an interface
// type, nil elements decode to the nil T. If any element has a different type,
// it returns a nil slice and a *TypeError for each offending element, combined
// with errutil.Multi.
func Decode[T any](l Fn) ([]T, error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	var xs []T
	var errs []error
	for i, x := range ToSlice(l) {
		if v, ok := x.(T); ok {
			xs = append(xs, v)
		} else if x == nil && typ.Kind() == reflect.Interface {
			var zero T
			xs = append(xs, zero)
		} else {
			errs = append(errs, &TypeError{Index: i, Want: typ.String(), Got: x})
		}
	}
	if err := errutil.Multi(errs...); err != nil {
		return nil, err
	}
	return xs, nil
}

// TypeError is returned by Decode for elements of an unexpected type.
type TypeError struct {
	Index int
	Want  string
	Got   any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("element %d: want %s, got %T", e.Index, e.Want, e.Got)
}

// FromList encodes a persistent list.
func FromList[T any](pl list.List[T]) Fn {
	return Encode(list.Slice(pl))
}

// ToList decodes a list whose elements all have type T to a persistent list.
// Errors are the same as Decode.
func ToList[T any](l Fn) (list.List[T], error) {
	xs, err := Decode[T](l)
	if err != nil {
		return nil, err
	}
	return list.Of(xs...), nil
}
