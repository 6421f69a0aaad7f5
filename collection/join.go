package collection

import "martianoff/flist/std"

// JoinByKey pairs every left value with every right value that shares its key.
//
// This is an inner join: a key missing on either side produces nothing, so
// left values without a match are dropped. Output follows left keys in
// first-seen order; within a key left values are the outer loop and right
// values the inner one, both in input order.
func JoinByKey[K comparable, L, R any](left List[Pair[K, L]], right List[Pair[K, R]]) List[Pair[K, std.Tuple[L, R]]] {
	lg := GroupByKey(left)
	rg := GroupByKey(right)
	var out []Pair[K, std.Tuple[L, R]]
	for _, k := range lg.keys {
		rs := rg.groups[k]
		for _, lv := range lg.groups[k].items {
			for _, rv := range rs.items {
				out = append(out, PairOf(k, std.NewTuple(lv, rv)))
			}
		}
	}
	return wrap(out)
}

// JoinByCustomKey joins two Lists on keys computed from their elements and
// keeps the computed key in the output.
func JoinByCustomKey[L, R any, K comparable](left List[L], right List[R], leftKey func(L) K, rightKey func(R) K) List[Pair[K, std.Tuple[L, R]]] {
	return JoinByKey(KeyBy(left, leftKey), KeyBy(right, rightKey))
}

// JoinByCustomKeyValues is JoinByCustomKey with the computed key stripped.
func JoinByCustomKeyValues[L, R any, K comparable](left List[L], right List[R], leftKey func(L) K, rightKey func(R) K) List[std.Tuple[L, R]] {
	return Values(JoinByCustomKey(left, right, leftKey, rightKey))
}

// Keys projects every Pair to its key.
func Keys[K comparable, V any](pairs List[Pair[K, V]]) List[K] {
	return Map(pairs, func(p Pair[K, V]) K { return p.Key })
}

// Values projects every Pair to its value.
func Values[K comparable, V any](pairs List[Pair[K, V]]) List[V] {
	return Map(pairs, func(p Pair[K, V]) V { return p.Value })
}
