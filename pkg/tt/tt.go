// Package tt supports table-driven tests with little boilerplate.
//
// A typical use:
//
//	tt.Test(t, fix.Factorial,
//		tt.Args(0).Rets(1),
//		tt.Args(5).Rets(120),
//	)
//
// See the test case for this package for more examples.
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, values are compared with cmp.Equal under
// CommonCmpOpt.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// Fn wraps a function under test with a name to use in error messages. When
// Test is called with a plain function, the name is derived from the runtime
// symbol table.
type Fn struct {
	name string
	body any
}

// NamedFn makes a new Fn with the given name and body.
func NamedFn(name string, body any) Fn {
	return Fn{name, body}
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// CommonCmpOpt is used in comparing return values. Functions are never equal
// under cmp.Equal, so they are compared by identity here.
var CommonCmpOpt = cmp.Options([]cmp.Option{
	cmp.FilterValues(bothFuncs, cmp.Comparer(sameFunc)),
})

// Test tests a function against test cases. The fn argument is either a
// function or a Fn.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	var name string
	var body any
	if f, ok := fn.(Fn); ok {
		name, body = f.name, f.body
	} else {
		name, body = funcName(fn), fn
	}
	for _, test := range tests {
		rets := call(body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if !match(retsMatcher, rets) {
				var diff string
				if len(retsMatcher) == 1 && len(rets) == 1 {
					diff = cmp.Diff(retsMatcher[0], rets[0], CommonCmpOpt)
				} else {
					diff = cmp.Diff(retsMatcher, rets, CommonCmpOpt)
				}
				t.Errorf("%s(%s) returns (-want +got):\n%s",
					name, sprintArgs(test.args...), diff)
			}
		}
	}
}

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

func match(matchers, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, CommonCmpOpt)
}

func sprintArgs(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value; use the zero value of
			// the parameter type instead.
			argsReflect[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

func paramType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}

func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "<unknown>"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	return name
}

func bothFuncs(a, b any) bool {
	return a != nil && b != nil &&
		reflect.TypeOf(a).Kind() == reflect.Func &&
		reflect.TypeOf(b).Kind() == reflect.Func
}

func sameFunc(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
