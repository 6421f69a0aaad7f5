package std

import "fmt"

// Tuple is an ordered pair. Joins emit Tuple[left, right].
type Tuple[A, B any] struct {
	V1 A
	V2 B
}

func NewTuple[A, B any](v1 A, v2 B) Tuple[A, B] {
	return Tuple[A, B]{V1: v1, V2: v2}
}

// Unpack returns both slots.
func (t Tuple[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

// Swap returns the tuple with its slots exchanged.
func (t Tuple[A, B]) Swap() Tuple[B, A] {
	return Tuple[B, A]{V1: t.V2, V2: t.V1}
}

func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V1, t.V2)
}
