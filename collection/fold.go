package collection

import "martianoff/flist/std"

// Fold combines the elements left to right, starting from the first one.
// An empty List yields None and combine is never called; a single element is
// returned as is.
func Fold[T any](l List[T], combine func(T, T) T) std.Option[T] {
	if len(l.items) == 0 {
		return std.None[T]()
	}
	acc := l.items[0]
	for _, v := range l.items[1:] {
		acc = combine(acc, v)
	}
	return std.Some(acc)
}

// FoldLeft combines the elements left to right into an accumulator that
// starts at zero.
func FoldLeft[T, A any](l List[T], zero A, combine func(A, T) A) A {
	acc := zero
	for _, v := range l.items {
		acc = combine(acc, v)
	}
	return acc
}
