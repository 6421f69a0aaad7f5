package collection

import "fmt"

// Pair is a key and its value. Grouping reads the key and the value of every
// Pair; joins emit Pair[K, std.Tuple[L, R]].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func PairOf[K comparable, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// Groups maps each key to the values that share it. Keys keep the order in
// which they were first seen and values keep their input order.
type Groups[K comparable, V any] struct {
	keys   []K
	groups map[K]List[V]
}

// GroupByKey builds Groups in a single pass over pairs.
func GroupByKey[K comparable, V any](pairs List[Pair[K, V]]) Groups[K, V] {
	var keys []K
	acc := make(map[K][]V)
	for _, p := range pairs.items {
		vs, seen := acc[p.Key]
		if !seen {
			keys = append(keys, p.Key)
		}
		acc[p.Key] = append(vs, p.Value)
	}
	groups := make(map[K]List[V], len(acc))
	for k, vs := range acc {
		groups[k] = wrap(vs)
	}
	return Groups[K, V]{keys: keys, groups: groups}
}

// GroupBy groups elements by the key that key computes for them.
func GroupBy[T any, K comparable](l List[T], key func(T) K) Groups[K, T] {
	return GroupByKey(KeyBy(l, key))
}

// KeyBy pairs every element with the key computed for it.
func KeyBy[T any, K comparable](l List[T], key func(T) K) List[Pair[K, T]] {
	return Map(l, func(v T) Pair[K, T] { return PairOf(key(v), v) })
}

// Len returns the number of distinct keys.
func (g Groups[K, V]) Len() int {
	return len(g.keys)
}

// Keys returns the keys in first-seen order.
func (g Groups[K, V]) Keys() List[K] {
	return Of(g.keys...)
}

// Get returns the values for k and whether k was present.
func (g Groups[K, V]) Get(k K) (List[V], bool) {
	vs, ok := g.groups[k]
	return vs, ok
}

// Values returns the values for k, empty when k is absent.
func (g Groups[K, V]) Values(k K) List[V] {
	return g.groups[k]
}

// Entries returns one Pair per key, in first-seen key order.
func (g Groups[K, V]) Entries() List[Pair[K, List[V]]] {
	out := make([]Pair[K, List[V]], len(g.keys))
	for i, k := range g.keys {
		out[i] = PairOf(k, g.groups[k])
	}
	return wrap(out)
}

// ReduceByKey groups pairs by key and folds every group with combine.
func ReduceByKey[K comparable, V any](pairs List[Pair[K, V]], combine func(V, V) V) List[Pair[K, V]] {
	return Map(GroupByKey(pairs).Entries(), func(e Pair[K, List[V]]) Pair[K, V] {
		// groups are never empty
		return PairOf(e.Key, Fold(e.Value, combine).Get())
	})
}
