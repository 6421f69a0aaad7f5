// Package collection provides List, an immutable ordered sequence, and the
// functional operations over it.
//
// Operations that change the element type are package-level functions
// because Go methods cannot have type parameters:
//
//	names := collection.Map(people, func(p Person) string { return p.Name })
//
// Every operation returns a new List and never modifies its inputs. Grouping,
// joining and de-duplication are built on one hash multimap (GroupByKey) and
// one left fold (Fold).
package collection

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"martianoff/flist/std"
)

// List is an immutable ordered sequence. The zero List is empty.
type List[T any] struct {
	items []T
}

// Of creates a List holding copies of items.
func Of[T any](items ...T) List[T] {
	return List[T]{items: slices.Clone(items)}
}

// Empty returns an empty List.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Collect creates a List from the values of seq.
func Collect[T any](seq iter.Seq[T]) List[T] {
	return List[T]{items: slices.Collect(seq)}
}

// wrap takes ownership of items without copying.
func wrap[T any](items []T) List[T] {
	return List[T]{items: items}
}

func (l List[T]) Len() int {
	return len(l.items)
}

func (l List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// At returns the element at index i. It panics if i is out of range.
func (l List[T]) At(i int) T {
	return l.items[i]
}

// Get returns the element at index i, or None if i is out of range.
func (l List[T]) Get(i int) std.Option[T] {
	if i < 0 || i >= len(l.items) {
		return std.None[T]()
	}
	return std.Some(l.items[i])
}

// Head returns the first element, or None for an empty List.
func (l List[T]) Head() std.Option[T] {
	return l.Get(0)
}

// Slice returns a copy of the elements.
func (l List[T]) Slice() []T {
	return slices.Clone(l.items)
}

// Values iterates over the elements in order.
func (l List[T]) Values() iter.Seq[T] {
	return slices.Values(l.items)
}

// All iterates over index/element pairs in order.
func (l List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

func (l List[T]) ForEach(f func(T)) {
	for _, v := range l.items {
		f(v)
	}
}

// Append returns a new List with vs added at the end.
func (l List[T]) Append(vs ...T) List[T] {
	out := make([]T, 0, len(l.items)+len(vs))
	out = append(out, l.items...)
	return wrap(append(out, vs...))
}

// Concat returns a new List with the elements of other after those of l.
func (l List[T]) Concat(other List[T]) List[T] {
	return l.Append(other.items...)
}

func (l List[T]) Filter(p func(T) bool) List[T] {
	var out []T
	for _, v := range l.items {
		if p(v) {
			out = append(out, v)
		}
	}
	return wrap(out)
}

func (l List[T]) String() string {
	parts := make([]string, len(l.items))
	for i, v := range l.items {
		parts[i] = fmt.Sprint(v)
	}
	return "List(" + strings.Join(parts, ", ") + ")"
}
