package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"martianoff/flist/element"
)

const (
	formatAuto  = "auto"
	formatTable = "table"
	formatTSV   = "tsv"
)

// table writes rows of cells, aligned for a terminal or tab-separated otherwise.
type table struct {
	out io.Writer
	tw  *tabwriter.Writer
}

func newTable(out io.Writer, format string) *table {
	t := &table{out: out}
	if format == formatTable || (format == formatAuto && isTerminal(out)) {
		t.tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	}
	return t
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *table) Row(cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = cell(c)
	}
	line := strings.Join(parts, "\t") + "\n"
	if t.tw != nil {
		io.WriteString(t.tw, line)
		return
	}
	io.WriteString(t.out, line)
}

func (t *table) Flush() error {
	if t.tw != nil {
		return t.tw.Flush()
	}
	return nil
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case element.Leaf:
		return cell(x.Value)
	case element.Node:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []string:
		return strings.Join(x, ", ")
	}
	return fmt.Sprint(v)
}

// expand spreads a row over several cells; other values fill one cell.
func expand(v any) []any {
	n, ok := v.(element.Node)
	if !ok {
		return []any{v}
	}
	out := make([]any, len(n))
	for i, c := range n {
		out[i] = c
	}
	return out
}
