package commands

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"martianoff/flist/collection"
	"martianoff/flist/element"
)

var (
	reduceSchema string
	reduceKey    string
	reduceValue  string
	reduceOp     string
)

var reduceCmd = &cobra.Command{
	Use:   "reduce FILE",
	Short: "Reduce the values of every key to one",
	Long: `Group the rows of FILE by --key and fold the values bound to --value with
--op, printing one line per key.

Operations:
  min, max   smallest or largest value (numbers compare numerically)
  sum        numeric sum
  count      number of rows
  first      first value seen
  last       last value seen

Examples:
  flist reduce cities.csv -s cities.yaml --key country --value pop --op sum`,
	Args: cobra.ExactArgs(1),
	RunE: runReduce,
}

func init() {
	reduceCmd.Flags().StringVarP(&reduceSchema, "schema", "s", "", "Path to the schema of FILE")
	reduceCmd.Flags().StringVarP(&reduceKey, "key", "k", "", "Name of the key")
	reduceCmd.Flags().StringVar(&reduceValue, "value", "", "Name of the value (default: whole row)")
	reduceCmd.Flags().StringVar(&reduceOp, "op", "first", "Reduction: "+strings.Join(reduceOps(), ", "))
	reduceCmd.MarkFlagRequired("schema")
	reduceCmd.MarkFlagRequired("key")
}

type reduction struct {
	// prepare converts every value before folding; nil keeps it.
	prepare func(element.Element) (element.Element, error)
	combine func(a, b element.Element) element.Element
}

var reductions = map[string]reduction{
	"min":   {combine: func(a, b element.Element) element.Element { return pick(a, b, -1) }},
	"max":   {combine: func(a, b element.Element) element.Element { return pick(a, b, 1) }},
	"sum":   {prepare: toNumber, combine: add},
	"count": {prepare: func(element.Element) (element.Element, error) { return element.Leaf{Value: int64(1)}, nil }, combine: add},
	"first": {combine: func(a, _ element.Element) element.Element { return a }},
	"last":  {combine: func(_, b element.Element) element.Element { return b }},
}

func reduceOps() []string {
	ops := make([]string, 0, len(reductions))
	for op := range reductions {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

func runReduce(cmd *cobra.Command, args []string) error {
	red, ok := reductions[reduceOp]
	if !ok {
		return fmt.Errorf("unknown reduction %q (want one of %s)", reduceOp, strings.Join(reduceOps(), ", "))
	}
	src, err := loadSource(reduceSchema, args[0])
	if err != nil {
		return err
	}
	kv, err := src.keyed(reduceKey, reduceValue)
	if err != nil {
		return err
	}
	if red.prepare != nil {
		kv, err = collection.TryMap(kv, func(row element.Element) (element.Element, error) {
			n := row.(element.Node)
			v, err := red.prepare(n[1])
			if err != nil {
				return nil, fmt.Errorf("%s of %s: %w", reduceOp, n, err)
			}
			return element.Node{n[0], v}, nil
		})
		if err != nil {
			return err
		}
	}
	reduced, err := collection.ReduceRows(kv, red.combine)
	if err != nil {
		return err
	}
	slog.Debug("reduced rows", "op", reduceOp, "rows", kv.Len(), "keys", reduced.Len())

	out := newTable(cmd.OutOrStdout(), outputFormat)
	for _, p := range reduced.Slice() {
		out.Row(append([]any{p.Key}, expand(p.Value)...)...)
	}
	return out.Flush()
}

func integer(e element.Element) (int64, bool) {
	l, ok := e.(element.Leaf)
	if !ok {
		return 0, false
	}
	switch v := l.Value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

func number(e element.Element) (float64, bool) {
	if i, ok := integer(e); ok {
		return float64(i), true
	}
	l, ok := e.(element.Leaf)
	if !ok {
		return 0, false
	}
	f, ok := l.Value.(float64)
	return f, ok
}

// toNumber keeps integers as int64 so sums of integer columns stay exact.
func toNumber(e element.Element) (element.Element, error) {
	if i, ok := integer(e); ok {
		return element.Leaf{Value: i}, nil
	}
	f, ok := number(e)
	if !ok {
		return nil, fmt.Errorf("%v is not a number", e)
	}
	return element.Leaf{Value: f}, nil
}

// add sums integers exactly and falls back to float64 when either side is a
// float or the integer sum overflows.
func add(a, b element.Element) element.Element {
	if x, ok := integer(a); ok {
		if y, ok := integer(b); ok {
			if s := x + y; (s > x) == (y > 0) {
				return element.Leaf{Value: s}
			}
		}
	}
	x, _ := number(a)
	y, _ := number(b)
	return element.Leaf{Value: x + y}
}

// pick returns b when it compares to a with the given sign, else a.
func pick(a, b element.Element, sign int) element.Element {
	var c int
	x, xok := integer(a)
	y, yok := integer(b)
	fx, fxok := number(a)
	fy, fyok := number(b)
	switch {
	case xok && yok:
		c = cmp.Compare(y, x)
	case fxok && fyok:
		c = cmp.Compare(fy, fx)
	default:
		c = strings.Compare(b.String(), a.String())
	}
	if c == sign {
		return b
	}
	return a
}
