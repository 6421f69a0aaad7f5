package bind

import (
	"martianoff/flist/collection"
	"martianoff/flist/element"
	"martianoff/flist/pattern"
)

// NamedMap binds p to t and maps every element of l through the result,
// stopping at the first error.
func NamedMap[R any](l collection.List[element.Element], p pattern.Nested, t Target[R], policy Policy) (collection.List[R], error) {
	f, err := Bind(p, t, policy)
	if err != nil {
		return collection.List[R]{}, err
	}
	return collection.TryMap(l, f)
}

// NamedFlatMap is NamedMap for targets that return a List per element.
func NamedFlatMap[R any](l collection.List[element.Element], p pattern.Nested, t Target[collection.List[R]], policy Policy) (collection.List[R], error) {
	f, err := Bind(p, t, policy)
	if err != nil {
		return collection.List[R]{}, err
	}
	return collection.TryFlatMap(l, f)
}
