package collection

// Map applies f to every element.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	out := make([]U, len(l.items))
	for i, v := range l.items {
		out[i] = f(v)
	}
	return wrap(out)
}

// TryMap applies f to every element and stops at the first error.
func TryMap[T, U any](l List[T], f func(T) (U, error)) (List[U], error) {
	out := make([]U, len(l.items))
	for i, v := range l.items {
		u, err := f(v)
		if err != nil {
			return List[U]{}, err
		}
		out[i] = u
	}
	return wrap(out), nil
}

// Flatten concatenates a List of Lists.
func Flatten[T any](l List[List[T]]) List[T] {
	n := 0
	for _, inner := range l.items {
		n += inner.Len()
	}
	out := make([]T, 0, n)
	for _, inner := range l.items {
		out = append(out, inner.items...)
	}
	return wrap(out)
}

// FlatMap maps every element to a List and concatenates the results.
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	return Flatten(Map(l, f))
}

// TryFlatMap is FlatMap for functions that can fail.
func TryFlatMap[T, U any](l List[T], f func(T) (List[U], error)) (List[U], error) {
	mapped, err := TryMap(l, f)
	if err != nil {
		return List[U]{}, err
	}
	return Flatten(mapped), nil
}
