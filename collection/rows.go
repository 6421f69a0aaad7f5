package collection

import (
	"fmt"

	"martianoff/flist/element"
	"martianoff/flist/flerr"
	"martianoff/flist/std"
)

// RowPairs reads position 0 of every row as its key and position 1 as its
// value. Positions after 1 are ignored. A row that is a leaf or has fewer
// than two positions fails with *flerr.ShapeError, as does a key whose value
// cannot be compared. Nested keys compare structurally (see element.Key).
func RowPairs(rows List[element.Element]) (List[Pair[any, element.Element]], error) {
	out := make([]Pair[any, element.Element], len(rows.items))
	for i, row := range rows.items {
		n, ok := row.(element.Node)
		if !ok {
			return List[Pair[any, element.Element]]{}, flerr.NewShapeError(i, -1, "expected a tuple, got a single value")
		}
		if len(n) < 2 {
			return List[Pair[any, element.Element]]{}, flerr.NewShapeError(i, len(n), fmt.Sprintf("expected at least 2 positions, got %d", len(n)))
		}
		k, ok := element.Key(n[0])
		if !ok {
			return List[Pair[any, element.Element]]{}, flerr.NewShapeError(i, len(n), fmt.Sprintf("key %v is not comparable", n[0]))
		}
		out[i] = PairOf(k, n[1])
	}
	return wrap(out), nil
}

// GroupRows groups (key, value, ...) rows with GroupByKey.
func GroupRows(rows List[element.Element]) (Groups[any, element.Element], error) {
	pairs, err := RowPairs(rows)
	if err != nil {
		return Groups[any, element.Element]{}, err
	}
	return GroupByKey(pairs), nil
}

// JoinRows joins (key, value, ...) rows with JoinByKey.
func JoinRows(left, right List[element.Element]) (List[Pair[any, std.Tuple[element.Element, element.Element]]], error) {
	lp, err := RowPairs(left)
	if err != nil {
		return List[Pair[any, std.Tuple[element.Element, element.Element]]]{}, err
	}
	rp, err := RowPairs(right)
	if err != nil {
		return List[Pair[any, std.Tuple[element.Element, element.Element]]]{}, err
	}
	return JoinByKey(lp, rp), nil
}

// ReduceRows groups (key, value, ...) rows and folds every group with combine.
func ReduceRows(rows List[element.Element], combine func(element.Element, element.Element) element.Element) (List[Pair[any, element.Element]], error) {
	pairs, err := RowPairs(rows)
	if err != nil {
		return List[Pair[any, element.Element]]{}, err
	}
	return ReduceByKey(pairs, combine), nil
}
