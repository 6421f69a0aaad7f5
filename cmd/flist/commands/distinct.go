package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"martianoff/flist/collection"
)

var (
	distinctSchema string
	distinctBy     []string
)

var distinctCmd = &cobra.Command{
	Use:   "distinct FILE",
	Short: "Print the distinct rows of a row file",
	Long: `Print every distinct row of FILE once, in order of first appearance.
With --by only the named values are compared and printed.

Examples:
  flist distinct cities.csv -s cities.yaml
  flist distinct cities.csv -s cities.yaml --by country`,
	Args: cobra.ExactArgs(1),
	RunE: runDistinct,
}

func init() {
	distinctCmd.Flags().StringVarP(&distinctSchema, "schema", "s", "", "Path to the schema of FILE")
	distinctCmd.Flags().StringSliceVar(&distinctBy, "by", nil, "Names to compare (default: whole row)")
	distinctCmd.MarkFlagRequired("schema")
}

func runDistinct(cmd *cobra.Command, args []string) error {
	src, err := loadSource(distinctSchema, args[0])
	if err != nil {
		return err
	}
	rows := src.rows
	if len(distinctBy) > 0 {
		rows, err = src.project(distinctBy)
		if err != nil {
			return err
		}
	}

	unique, err := collection.DistinctRows(rows)
	if err != nil {
		return err
	}
	slog.Debug("distinct rows", "rows", rows.Len(), "distinct", unique.Len())

	out := newTable(cmd.OutOrStdout(), outputFormat)
	for _, row := range unique.Slice() {
		out.Row(expand(row)...)
	}
	return out.Flush()
}
