package pattern

import (
	"errors"

	"martianoff/flist/element"
	"martianoff/flist/flerr"
)

// Binding maps names to the values resolved for one element.
type Binding map[string]any

// Resolve walks every compiled address into e. A leaf position binds its
// value and a nested position binds the element.Node found there. The first
// address that does not fit e fails with *flerr.ShapeMismatchError and no
// binding is returned.
func Resolve(a *Addresses, e element.Element) (Binding, error) {
	b := make(Binding, len(a.names))
	for _, name := range a.names {
		v, err := element.At(e, a.index[name])
		if err != nil {
			var sm *flerr.ShapeMismatchError
			if errors.As(err, &sm) {
				sm.Name = name
			}
			return nil, err
		}
		b[name] = element.Value(v)
	}
	return b, nil
}

// Match parses lit, compiles it and resolves it against e in one call.
func Match(lit any, e element.Element) (Binding, error) {
	p, err := Parse(lit)
	if err != nil {
		return nil, err
	}
	a, err := Compile(p)
	if err != nil {
		return nil, err
	}
	return Resolve(a, e)
}
