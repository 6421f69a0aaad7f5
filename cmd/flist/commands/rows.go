package commands

import (
	"fmt"
	"log/slog"

	"martianoff/flist/bind"
	"martianoff/flist/collection"
	"martianoff/flist/element"
	"martianoff/flist/internal/schema"
	"martianoff/flist/pattern"
)

// source is a row file together with the schema that describes it.
type source struct {
	schema  *schema.Schema
	pattern pattern.Nested
	rows    collection.List[element.Element]
}

func loadSource(schemaPath, file string) (*source, error) {
	if schemaPath == "" {
		return nil, fmt.Errorf("no schema given for %s", file)
	}
	s, err := schema.Load(schemaPath)
	if err != nil {
		return nil, err
	}
	p, err := s.ShapePattern()
	if err != nil {
		return nil, err
	}
	r, err := s.Reader()
	if err != nil {
		return nil, err
	}
	rows, err := r.ReadFile(file)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded rows", "file", file, "schema", schemaPath, "rows", rows.Len(), "pattern", p.String())
	return &source{schema: s, pattern: p, rows: rows}, nil
}

// requireNames fails unless the source pattern exposes every name.
func (s *source) requireNames(names ...string) error {
	addrs, err := pattern.Compile(s.pattern)
	if err != nil {
		return err
	}
	if missing := addrs.Missing(names); len(missing) > 0 {
		return fmt.Errorf("pattern %s has no name %q", s.pattern, missing[0])
	}
	return nil
}

// keyed maps every row to a (key, value) tuple. An empty value name keeps
// the whole row as the value.
func (s *source) keyed(key, value string) (collection.List[element.Element], error) {
	params := []string{key}
	if value != "" {
		params = append(params, value)
	}
	if err := s.requireNames(params...); err != nil {
		return collection.List[element.Element]{}, err
	}

	f, err := bind.Bind(s.pattern, bind.Fn(params, passBinding), bind.Filtered)
	if err != nil {
		return collection.List[element.Element]{}, err
	}
	return collection.TryMap(s.rows, func(row element.Element) (element.Element, error) {
		b, err := f(row)
		if err != nil {
			return nil, err
		}
		if value == "" {
			return element.Tuple(b[key], row), nil
		}
		return element.Tuple(b[key], b[value]), nil
	})
}

func passBinding(b pattern.Binding) (pattern.Binding, error) {
	return b, nil
}

// project maps every row to the tuple of the named values, in names order.
func (s *source) project(names []string) (collection.List[element.Element], error) {
	if err := s.requireNames(names...); err != nil {
		return collection.List[element.Element]{}, err
	}
	target := bind.Fn(names, func(b pattern.Binding) (element.Element, error) {
		vals := make([]any, len(names))
		for i, n := range names {
			vals[i] = b[n]
		}
		return element.Tuple(vals...), nil
	})
	return bind.NamedMap(s.rows, s.pattern, target, bind.Filtered)
}
