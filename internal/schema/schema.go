// Package schema loads the YAML files that describe row files for the flist
// command: the separator, one parser per column, and an optional shape
// pattern naming the positions.
//
//	separator: ";"
//	columns:
//	  - {name: id, type: int}
//	  - {name: city, type: string}
//	  - {name: pop, type: "int?"}
//	pattern: [id, city, ~]
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"martianoff/flist/flerr"
	"martianoff/flist/pattern"
	"martianoff/flist/reader"
)

// SeparatorEnv overrides the default separator for schemas that omit one.
const SeparatorEnv = "FLIST_SEPARATOR"

// Schema describes the layout of a row file.
type Schema struct {
	// Separator splits a line into columns. Defaults to DefaultSeparator().
	Separator string `yaml:"separator,omitempty"`

	// Columns lists the columns in file order.
	Columns []Column `yaml:"columns"`

	// Pattern is a pattern literal over the row. When omitted every column
	// is bound under its own name.
	Pattern any `yaml:"pattern,omitempty"`

	// FilePath is where the schema was loaded from, used in errors.
	FilePath string `yaml:"-"`
}

// Column is one column of a row file.
type Column struct {
	Name string `yaml:"name"`
	// Type is a parser name understood by reader.Lookup.
	Type string `yaml:"type"`
}

// DefaultSeparator returns $FLIST_SEPARATOR if set, otherwise reader.DefaultSeparator.
func DefaultSeparator() string {
	if sep := os.Getenv(SeparatorEnv); sep != "" {
		return sep
	}
	return reader.DefaultSeparator
}

// Parse decodes and validates a schema. path is only used in errors.
func Parse(content []byte, path string) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(content, &s); err != nil {
		return nil, flerr.NewSchemaError(path, fmt.Sprintf("invalid YAML: %v", err))
	}
	s.FilePath = path
	if s.Separator == "" {
		s.Separator = DefaultSeparator()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return Parse(content, path)
}

// Validate reports every problem with the schema at once, as a
// *flerr.MultiError of *flerr.SchemaError.
func (s *Schema) Validate() error {
	var errs []error
	if len(s.Columns) == 0 {
		errs = append(errs, flerr.NewSchemaError(s.FilePath, "no columns declared"))
	}
	seen := make(map[string]bool)
	for i, c := range s.Columns {
		switch {
		case c.Name == "":
			errs = append(errs, flerr.NewSchemaError(s.FilePath, fmt.Sprintf("column %d has no name", i)))
		case seen[c.Name]:
			errs = append(errs, flerr.NewSchemaError(s.FilePath, fmt.Sprintf("column %q declared twice", c.Name)))
		}
		seen[c.Name] = true
		if _, err := reader.Lookup(c.Type); err != nil {
			errs = append(errs, flerr.NewSchemaError(s.FilePath, fmt.Sprintf("column %q: %v", c.Name, err)))
		}
	}
	if s.Pattern != nil {
		if _, err := pattern.Parse(s.Pattern); err != nil {
			errs = append(errs, flerr.NewSchemaError(s.FilePath, fmt.Sprintf("pattern: %v", err)))
		}
	}
	if len(errs) > 0 {
		return &flerr.MultiError{Errors: errs}
	}
	return nil
}

// Names returns the column names in file order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Reader builds a row reader with one parser per column.
func (s *Schema) Reader() (*reader.Reader, error) {
	parsers := make([]reader.ParseFunc, len(s.Columns))
	for i, c := range s.Columns {
		p, err := reader.Lookup(c.Type)
		if err != nil {
			return nil, flerr.NewSchemaError(s.FilePath, fmt.Sprintf("column %q: %v", c.Name, err))
		}
		parsers[i] = p
	}
	return reader.New(s.Separator, parsers...), nil
}

// ShapePattern returns the declared pattern, or one Name per column.
func (s *Schema) ShapePattern() (pattern.Nested, error) {
	if s.Pattern == nil {
		return pattern.Parse(s.Names())
	}
	return pattern.Parse(s.Pattern)
}
