// Package list implements a persistent singly-linked list.
//
// Like a Church-encoded list, a List is never modified after construction:
// Cons returns a new list that shares its tail with the receiver.
package list

// List is a persistent list.
type List[T any] interface {
	// Len returns the number of values in the list.
	Len() int
	// Cons returns a new list with an additional value in the front.
	Cons(T) List[T]
	// First returns the first value in the list. It returns the zero value of
	// T if the list is empty.
	First() T
	// Rest returns the list after the first value. The Rest of an empty list
	// is the list itself.
	Rest() List[T]
}

// Empty returns an empty list.
func Empty[T any]() List[T] { return &list[T]{} }

type list[T any] struct {
	first T
	rest  *list[T]
	count int
}

func (l *list[T]) Len() int { return l.count }

func (l *list[T]) Cons(val T) List[T] { return &list[T]{val, l, l.count + 1} }

func (l *list[T]) First() T { return l.first }

func (l *list[T]) Rest() List[T] {
	if l.rest == nil {
		return l
	}
	return l.rest
}

// Of returns a list of the given values, in the same order.
func Of[T any](vals ...T) List[T] {
	l := Empty[T]()
	for i := len(vals) - 1; i >= 0; i-- {
		l = l.Cons(vals[i])
	}
	return l
}

// Slice returns the values of l in order.
func Slice[T any](l List[T]) []T {
	vals := make([]T, 0, l.Len())
	for ; l.Len() > 0; l = l.Rest() {
		vals = append(vals, l.First())
	}
	return vals
}
