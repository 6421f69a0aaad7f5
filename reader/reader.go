// Package reader turns separated text lines into tuples of typed values.
//
// A Reader holds one parser per column. Every non-blank line is trimmed,
// split on the separator, and each part is trimmed and handed to the parser
// for its position. The result is an element.Node of Leaves, one per column.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"martianoff/flist/collection"
	"martianoff/flist/element"
	"martianoff/flist/flerr"
)

// DefaultSeparator is used when a Reader is created with an empty separator.
const DefaultSeparator = ","

// Reader parses rows with a fixed list of column parsers.
type Reader struct {
	separator string
	parsers   []ParseFunc
}

// New creates a Reader. An empty separator means DefaultSeparator.
func New(separator string, parsers ...ParseFunc) *Reader {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Reader{separator: separator, parsers: parsers}
}

// Separator returns the column separator.
func (r *Reader) Separator() string {
	return r.separator
}

// Columns returns the number of columns every row must have.
func (r *Reader) Columns() int {
	return len(r.parsers)
}

// ReadRow parses one line. A column count different from the number of
// parsers, or a failing parser, is a *flerr.RowError reported at line 0.
func (r *Reader) ReadRow(line string) (element.Node, error) {
	return r.readRow(0, line)
}

func (r *Reader) readRow(lineNum int, line string) (element.Node, error) {
	parts := strings.Split(strings.TrimSpace(line), r.separator)
	if len(parts) != len(r.parsers) {
		return nil, flerr.NewRowError(lineNum, fmt.Sprintf("expected %d columns, got %d", len(r.parsers), len(parts)))
	}
	row := make(element.Node, len(parts))
	for i, part := range parts {
		v, err := r.parsers[i](strings.TrimSpace(part))
		if err != nil {
			return nil, flerr.NewColumnError(lineNum, i, err)
		}
		row[i] = element.Leaf{Value: v}
	}
	return row, nil
}

// Parse reads rows from a string.
func (r *Reader) Parse(content string) (collection.List[element.Element], error) {
	return r.Read(strings.NewReader(content))
}

// Read reads rows from in until EOF. Lines may be of any length. Blank lines
// are skipped; line numbers in errors are 1-based.
func (r *Reader) Read(in io.Reader) (collection.List[element.Element], error) {
	var rows []element.Element
	br := bufio.NewReader(in)
	lineNum := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return collection.List[element.Element]{}, fmt.Errorf("failed to read rows: %w", err)
		}
		if line != "" {
			lineNum++
			if strings.TrimSpace(line) != "" {
				row, rerr := r.readRow(lineNum, line)
				if rerr != nil {
					return collection.List[element.Element]{}, rerr
				}
				rows = append(rows, row)
			}
		}
		if err == io.EOF {
			return collection.Of(rows...), nil
		}
	}
}

// ReadFile reads rows from the file at path.
func (r *Reader) ReadFile(path string) (collection.List[element.Element], error) {
	f, err := os.Open(path)
	if err != nil {
		return collection.List[element.Element]{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := r.Read(f)
	if err != nil {
		return collection.List[element.Element]{}, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadFile reads the file at path with a Reader built from separator and parsers.
func ReadFile(path string, separator string, parsers ...ParseFunc) (collection.List[element.Element], error) {
	return New(separator, parsers...).ReadFile(path)
}
