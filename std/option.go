// Package std holds the small value types shared across flist: the Option
// returned by folds and the two-slot Tuple produced by joins.
package std

import "fmt"

// Option is either a defined value or nothing. The zero Option is None.
type Option[T any] struct {
	Value   T
	Defined bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Defined: true}
}

func None[T any]() Option[T] {
	return Option[T]{Defined: false}
}

func (o Option[T]) IsDefined() bool {
	return o.Defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.Defined
}

func (o Option[T]) Get() T {
	if !o.Defined {
		panic("Option.Get on None")
	}
	return o.Value
}

func (o Option[T]) GetOrElse(defaultValue T) T {
	if o.Defined {
		return o.Value
	}
	return defaultValue
}

// Unpack returns the value and whether it is defined, for comma-ok use.
func (o Option[T]) Unpack() (T, bool) {
	return o.Value, o.Defined
}

func (o Option[T]) ForEach(f func(T)) {
	if o.Defined {
		f(o.Value)
	}
}

func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if o.Defined && p(o.Value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if !o.Defined {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.Value)
}

// Map and FlatMap are provided as functions because Go methods cannot have type parameters.

func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.Defined {
		return Some(f(o.Value))
	}
	return None[U]()
}

func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.Defined {
		return f(o.Value)
	}
	return None[U]()
}
