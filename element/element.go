// Package element models the nested tuples flist works on.
//
// An Element is either a Leaf holding one opaque value or a Node holding an
// ordered sequence of child elements. Rows produced by the reader are Nodes of
// Leaves; hand-built values may nest Nodes to any depth.
package element

import (
	"fmt"
	"reflect"
	"strings"

	"martianoff/flist/flerr"
)

// Element is a Leaf or a Node.
type Element interface {
	isElement()
	String() string
}

// Leaf is a single value at a tuple position.
type Leaf struct {
	Value any
}

// Node is a tuple of elements.
type Node []Element

func (Leaf) isElement() {}
func (Node) isElement() {}

func (l Leaf) String() string {
	return fmt.Sprint(l.Value)
}

func (n Node) String() string {
	parts := make([]string, len(n))
	for i, c := range n {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Len returns the arity of the tuple.
func (n Node) Len() int {
	return len(n)
}

// Of converts a Go value into an Element. Elements pass through unchanged,
// slices and arrays (other than []byte) become Nodes recursively, and anything
// else becomes a Leaf.
func Of(v any) Element {
	switch x := v.(type) {
	case Element:
		return x
	case []Element:
		return Node(append([]Element(nil), x...))
	case []any:
		n := make(Node, len(x))
		for i, c := range x {
			n[i] = Of(c)
		}
		return n
	case []byte:
		return Leaf{Value: x}
	case nil:
		return Leaf{}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		n := make(Node, rv.Len())
		for i := range n {
			n[i] = Of(rv.Index(i).Interface())
		}
		return n
	}
	return Leaf{Value: v}
}

// Tuple builds a Node from its arguments, converting each with Of.
func Tuple(vs ...any) Node {
	n := make(Node, len(vs))
	for i, v := range vs {
		n[i] = Of(v)
	}
	return n
}

// Unwrap converts an Element back into plain Go values: a Leaf yields its
// value and a Node yields []any.
func Unwrap(e Element) any {
	switch x := e.(type) {
	case Leaf:
		return x.Value
	case Node:
		out := make([]any, len(x))
		for i, c := range x {
			out[i] = Unwrap(c)
		}
		return out
	}
	return nil
}

// Value is what a name binds to: the value of a Leaf, or the Node itself.
func Value(e Element) any {
	if l, ok := e.(Leaf); ok {
		return l.Value
	}
	return e
}

// At walks address into e, one index per level. Indexing into a Leaf or past
// the arity of a Node fails with *flerr.ShapeMismatchError.
func At(e Element, address []int) (Element, error) {
	cur := e
	for depth, idx := range address {
		n, ok := cur.(Node)
		if !ok {
			return nil, flerr.NewShapeMismatchError(address, depth, -1)
		}
		if idx < 0 || idx >= len(n) {
			return nil, flerr.NewShapeMismatchError(address, depth, len(n))
		}
		cur = n[idx]
	}
	return cur, nil
}

// nodeKey is the key of a Node. Its own type keeps it apart from a string
// Leaf that happens to hold the same text.
type nodeKey string

// Key returns a comparable value that identifies e for grouping. A Leaf is
// keyed by its value, which must be comparable. A Node is keyed by its
// canonical text form, so structurally equal tuples share a key.
func Key(e Element) (any, bool) {
	switch x := e.(type) {
	case Leaf:
		if x.Value == nil {
			return nil, true
		}
		if !reflect.TypeOf(x.Value).Comparable() {
			return nil, false
		}
		return x.Value, true
	case Node:
		return nodeKey(canonical(x)), true
	}
	return nil, false
}

func canonical(e Element) string {
	switch x := e.(type) {
	case Leaf:
		return fmt.Sprintf("%#v", x.Value)
	case Node:
		parts := make([]string, len(x))
		for i, c := range x {
			parts[i] = canonical(c)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return ""
}
