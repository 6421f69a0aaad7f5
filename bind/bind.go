// Package bind adapts nested tuples to functions that take named arguments.
//
// A pattern says what the positions of a record mean; a Target says which
// names a step needs. Bind joins the two once and returns a function that
// resolves and forwards the named values for every element:
//
//	p := pattern.MustParse([]any{"id", nil, []any{"lat", "lon"}})
//	f, err := bind.Bind(p, bind.Fn([]string{"lat", "lon"}, dist), bind.Filtered)
//	out, err := collection.TryMap(rows, f)
package bind

import (
	"fmt"
	"slices"

	"martianoff/flist/element"
	"martianoff/flist/flerr"
	"martianoff/flist/pattern"
)

// Policy decides what happens to resolved names the target does not declare.
type Policy int

const (
	// Strict rejects a pattern that exposes any name the target does not declare.
	Strict Policy = iota
	// Filtered passes only the names the target declares and drops the rest.
	Filtered
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Filtered:
		return "filtered"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Target is a function that receives values by name.
type Target[R any] interface {
	// Params returns the names the target accepts.
	Params() []string
	// Invoke calls the target with one resolved binding.
	Invoke(b pattern.Binding) (R, error)
}

// Bind compiles p once and returns a function that resolves it against an
// element and invokes t with the result.
//
// With Strict, every name in p must be one of t.Params(), otherwise Bind
// fails with *flerr.ArgumentMismatchError. With Filtered, names t does not
// declare are never resolved. Declared names that p does not expose are
// absent from the binding in both modes.
func Bind[R any](p pattern.Nested, t Target[R], policy Policy) (func(element.Element) (R, error), error) {
	addrs, err := pattern.Compile(p)
	if err != nil {
		return nil, err
	}
	params := t.Params()
	switch policy {
	case Strict:
		var unknown []string
		for _, name := range addrs.Names() {
			if !slices.Contains(params, name) {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			return nil, flerr.NewArgumentMismatchError(unknown...)
		}
	case Filtered:
		addrs = addrs.Restrict(params)
	default:
		return nil, fmt.Errorf("bind: unknown policy %v", policy)
	}

	return func(e element.Element) (R, error) {
		b, err := pattern.Resolve(addrs, e)
		if err != nil {
			var zero R
			return zero, err
		}
		return t.Invoke(b)
	}, nil
}

// MustBind is like Bind but panics on error.
func MustBind[R any](p pattern.Nested, t Target[R], policy Policy) func(element.Element) (R, error) {
	f, err := Bind(p, t, policy)
	if err != nil {
		panic(err)
	}
	return f
}

type fnTarget[R any] struct {
	params []string
	fn     func(pattern.Binding) (R, error)
}

// Fn declares a target from an explicit parameter list and a function over
// the binding.
func Fn[R any](params []string, fn func(pattern.Binding) (R, error)) Target[R] {
	return fnTarget[R]{params: slices.Clone(params), fn: fn}
}

func (t fnTarget[R]) Params() []string {
	return slices.Clone(t.params)
}

func (t fnTarget[R]) Invoke(b pattern.Binding) (R, error) {
	return t.fn(b)
}

// Arg reads a typed argument from a binding. A missing name or a value of
// another type fails with *flerr.ArgumentMismatchError.
func Arg[T any](b pattern.Binding, name string) (T, error) {
	var zero T
	v, ok := b[name]
	if !ok {
		return zero, flerr.NewArgumentMismatchErrorf(name, "missing argument %q", name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, flerr.NewArgumentMismatchErrorf(name, "argument %q is %T, want %T", name, v, zero)
	}
	return t, nil
}
