package pattern

import (
	"slices"

	"martianoff/flist/flerr"
)

// Address locates a value inside a nested tuple, one index per level.
type Address []int

// Addresses is a compiled pattern: the address of every name, plus the order
// in which names first appear in the pattern.
type Addresses struct {
	names []string
	index map[string]Address
}

// Compile walks p depth-first and records the address of every Name.
//
// When a name occurs more than once the later address overwrites the earlier
// one; the name keeps the position of its first occurrence in Names. A nil
// child fails with *flerr.InvalidPatternError.
func Compile(p Nested) (*Addresses, error) {
	a := &Addresses{index: make(map[string]Address)}
	if err := a.walk(p, nil); err != nil {
		return nil, err
	}
	return a, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(p Nested) *Addresses {
	a, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Addresses) walk(p Nested, prefix Address) error {
	for i, child := range p {
		addr := Address(childPath(prefix, i))
		switch c := child.(type) {
		case Name:
			if _, seen := a.index[string(c)]; !seen {
				a.names = append(a.names, string(c))
			}
			a.index[string(c)] = addr
		case Nested:
			if err := a.walk(c, addr); err != nil {
				return err
			}
		case Skip:
		default:
			return flerr.NewInvalidPatternError(addr, child)
		}
	}
	return nil
}

// Names returns the compiled names in first-seen order.
func (a *Addresses) Names() []string {
	return slices.Clone(a.names)
}

// Len returns the number of distinct names.
func (a *Addresses) Len() int {
	return len(a.names)
}

// Lookup returns the address compiled for name.
func (a *Addresses) Lookup(name string) (Address, bool) {
	addr, ok := a.index[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(addr), true
}

// Has reports whether name was compiled.
func (a *Addresses) Has(name string) bool {
	_, ok := a.index[name]
	return ok
}

// Restrict returns the subset of a whose names appear in keep, in a's order.
func (a *Addresses) Restrict(keep []string) *Addresses {
	out := &Addresses{index: make(map[string]Address)}
	for _, name := range a.names {
		if slices.Contains(keep, name) {
			out.names = append(out.names, name)
			out.index[name] = a.index[name]
		}
	}
	return out
}

// Missing returns the names in want that a does not compile, in want's order.
func (a *Addresses) Missing(want []string) []string {
	var out []string
	for _, name := range want {
		if !a.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
