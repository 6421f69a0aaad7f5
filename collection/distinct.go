package collection

import (
	"fmt"

	"martianoff/flist/element"
	"martianoff/flist/flerr"
)

// Distinct keeps the first occurrence of every element, comparing with ==.
// The dynamic values of T must be hashable; element rows hold slices, so use
// DistinctRows for them.
func Distinct[T comparable](l List[T]) List[T] {
	ones := Map(l, func(v T) Pair[T, int] { return PairOf(v, 1) })
	return Keys(ReduceByKey(ones, func(int, int) int { return 1 }))
}

// DistinctBy keeps the first element for every key that key computes.
func DistinctBy[T any, K comparable](l List[T], key func(T) K) List[T] {
	return distinctPairs(KeyBy(l, key))
}

// DistinctRows keeps the first occurrence of every row, comparing rows
// structurally through element.Key. A row holding a value that cannot be
// compared fails with *flerr.ShapeError.
func DistinctRows(rows List[element.Element]) (List[element.Element], error) {
	pairs := make([]Pair[any, element.Element], len(rows.items))
	for i, row := range rows.items {
		k, ok := element.Key(row)
		if !ok {
			return List[element.Element]{}, flerr.NewShapeError(i, arity(row), fmt.Sprintf("row %v is not comparable", row))
		}
		pairs[i] = PairOf(k, row)
	}
	return distinctPairs(wrap(pairs)), nil
}

func distinctPairs[K comparable, T any](pairs List[Pair[K, T]]) List[T] {
	return Values(ReduceByKey(pairs, func(first, _ T) T { return first }))
}

func arity(e element.Element) int {
	if n, ok := e.(element.Node); ok {
		return len(n)
	}
	return -1
}
