package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"martianoff/flist/collection"
	"martianoff/flist/element"
	"martianoff/flist/std"
)

var (
	joinLeftSchema  string
	joinRightSchema string
	joinOn          string
	joinRightOn     string
	joinKeepKey     bool
)

var joinCmd = &cobra.Command{
	Use:   "join LEFT RIGHT",
	Short: "Inner join two row files on a key",
	Long: `Join the rows of LEFT and RIGHT whose keys are equal and print every
matching pair of rows, left columns first.

This is an inner join: rows whose key has no match on the other side are not
printed. Output follows the first appearance of each key in LEFT; within a key
every left row is paired with every right row, both in file order.

Examples:
  flist join users.csv orders.csv --left-schema users.yaml --right-schema orders.yaml --on id --right-on user_id`,
	Args: cobra.ExactArgs(2),
	RunE: runJoin,
}

func init() {
	joinCmd.Flags().StringVar(&joinLeftSchema, "left-schema", "", "Path to the schema of LEFT")
	joinCmd.Flags().StringVar(&joinRightSchema, "right-schema", "", "Path to the schema of RIGHT (default: --left-schema)")
	joinCmd.Flags().StringVar(&joinOn, "on", "", "Name of the key in LEFT")
	joinCmd.Flags().StringVar(&joinRightOn, "right-on", "", "Name of the key in RIGHT (default: --on)")
	joinCmd.Flags().BoolVar(&joinKeepKey, "keep-key", false, "Print the key before each pair")
	joinCmd.MarkFlagRequired("left-schema")
	joinCmd.MarkFlagRequired("on")
}

// keyedRow is a row with the comparable form of its key.
type keyedRow struct {
	key any
	row element.Element
}

func keyRows(src *source, name string) (collection.List[keyedRow], error) {
	kv, err := src.keyed(name, "")
	if err != nil {
		return collection.List[keyedRow]{}, err
	}
	pairs, err := collection.RowPairs(kv)
	if err != nil {
		return collection.List[keyedRow]{}, err
	}
	return collection.Map(pairs, func(p collection.Pair[any, element.Element]) keyedRow {
		return keyedRow{key: p.Key, row: p.Value}
	}), nil
}

func runJoin(cmd *cobra.Command, args []string) error {
	rightSchema := joinRightSchema
	if rightSchema == "" {
		rightSchema = joinLeftSchema
	}
	rightOn := joinRightOn
	if rightOn == "" {
		rightOn = joinOn
	}

	left, err := loadSource(joinLeftSchema, args[0])
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	right, err := loadSource(rightSchema, args[1])
	if err != nil {
		return fmt.Errorf("right: %w", err)
	}
	lk, err := keyRows(left, joinOn)
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	rk, err := keyRows(right, rightOn)
	if err != nil {
		return fmt.Errorf("right: %w", err)
	}

	byKey := func(r keyedRow) any { return r.key }
	out := newTable(cmd.OutOrStdout(), outputFormat)
	if joinKeepKey {
		joined := collection.JoinByCustomKey(lk, rk, byKey, byKey)
		slog.Debug("joined rows", "left", lk.Len(), "right", rk.Len(), "pairs", joined.Len())
		for _, p := range joined.Slice() {
			out.Row(append([]any{p.Key}, pairCells(p.Value)...)...)
		}
		return out.Flush()
	}

	joined := collection.JoinByCustomKeyValues(lk, rk, byKey, byKey)
	slog.Debug("joined rows", "left", lk.Len(), "right", rk.Len(), "pairs", joined.Len())
	for _, t := range joined.Slice() {
		out.Row(pairCells(t)...)
	}
	return out.Flush()
}

func pairCells(t std.Tuple[keyedRow, keyedRow]) []any {
	return append(expand(t.V1.row), expand(t.V2.row)...)
}
