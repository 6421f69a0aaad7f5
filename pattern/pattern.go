// Package pattern compiles shape patterns into named addresses and resolves
// them against nested tuples.
//
// A shape pattern describes the interesting layout of a tuple:
//
//	pattern.Nested{pattern.Name("id"), pattern.Skip{}, pattern.Nested{pattern.Name("lat"), pattern.Name("lon")}}
//
// or, in literal form accepted by Parse,
//
//	[]any{"id", nil, []any{"lat", "lon"}}
//
// Compiling it yields id→[0], lat→[2 0], lon→[2 1]. Resolving those addresses
// against (7, "x", (1.5, 2.5)) yields {id: 7, lat: 1.5, lon: 2.5}.
package pattern

import (
	"strings"

	"martianoff/flist/flerr"
)

// Pattern is a Name, a Nested or a Skip.
type Pattern interface {
	isPattern()
	String() string
}

// Name marks a position whose value is extracted under this label.
type Name string

// Nested describes a sub-tuple, one child pattern per position.
type Nested []Pattern

// Skip marks a position that is ignored.
type Skip struct{}

func (Name) isPattern()   {}
func (Nested) isPattern() {}
func (Skip) isPattern()   {}

func (n Name) String() string {
	return string(n)
}

func (n Nested) String() string {
	parts := make([]string, len(n))
	for i, c := range n {
		if c == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (Skip) String() string {
	return "_"
}

// Of builds a Nested pattern from its arguments using the literal syntax
// accepted by Parse.
func Of(children ...any) (Nested, error) {
	return Parse(children)
}

// MustParse is like Parse but panics on error. It is meant for patterns
// declared as package-level variables.
func MustParse(lit any) Nested {
	p, err := Parse(lit)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse converts a pattern literal into a Nested pattern. In the literal
// syntax a string is a Name, a slice is a Nested, and nil, "" or "_" is a
// Skip. Pattern values may be mixed in freely. The top level must be a
// sequence. Any other value fails with *flerr.InvalidPatternError naming its
// path.
func Parse(lit any) (Nested, error) {
	p, err := parseNode(lit, nil)
	if err != nil {
		return nil, err
	}
	n, ok := p.(Nested)
	if !ok {
		return nil, flerr.NewInvalidPatternError(nil, lit)
	}
	return n, nil
}

func parseNode(lit any, path []int) (Pattern, error) {
	switch x := lit.(type) {
	case nil:
		return Skip{}, nil
	case Skip:
		return x, nil
	case Name:
		return x, nil
	case Nested:
		for i, c := range x {
			if c == nil {
				return nil, flerr.NewInvalidPatternError(childPath(path, i), c)
			}
			if _, err := parseNode(c, childPath(path, i)); err != nil {
				return nil, err
			}
		}
		return x, nil
	case string:
		if x == "" || x == "_" {
			return Skip{}, nil
		}
		return Name(x), nil
	case []string:
		out := make(Nested, len(x))
		for i, s := range x {
			c, _ := parseNode(s, nil)
			out[i] = c
		}
		return out, nil
	case []any:
		out := make(Nested, len(x))
		for i, c := range x {
			p, err := parseNode(c, childPath(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	case []Pattern:
		return parseNode(Nested(x), path)
	}
	return nil, flerr.NewInvalidPatternError(path, lit)
}

func childPath(path []int, i int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = i
	return out
}
