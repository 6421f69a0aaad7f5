package commands

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"martianoff/flist/collection"
	"martianoff/flist/element"
)

var (
	groupSchema string
	groupKey    string
	groupValue  string
)

var groupCmd = &cobra.Command{
	Use:   "group FILE",
	Short: "Group the values of a row file by key",
	Long: `Group the rows of FILE by the value bound to --key and print one line
per key with every value bound to --value, in input order. Keys are printed in
the order they first appear. Without --value the whole row is grouped.

Examples:
  flist group cities.csv -s cities.yaml --key country --value city`,
	Args: cobra.ExactArgs(1),
	RunE: runGroup,
}

func init() {
	groupCmd.Flags().StringVarP(&groupSchema, "schema", "s", "", "Path to the schema of FILE")
	groupCmd.Flags().StringVarP(&groupKey, "key", "k", "", "Name of the key")
	groupCmd.Flags().StringVar(&groupValue, "value", "", "Name of the value (default: whole row)")
	groupCmd.MarkFlagRequired("schema")
	groupCmd.MarkFlagRequired("key")
}

func runGroup(cmd *cobra.Command, args []string) error {
	src, err := loadSource(groupSchema, args[0])
	if err != nil {
		return err
	}
	kv, err := src.keyed(groupKey, groupValue)
	if err != nil {
		return err
	}
	groups, err := collection.GroupRows(kv)
	if err != nil {
		return err
	}
	slog.Debug("grouped rows", "rows", kv.Len(), "keys", groups.Len())

	out := newTable(cmd.OutOrStdout(), outputFormat)
	for _, e := range groups.Entries().Slice() {
		values := collection.Map(e.Value, func(v element.Element) string { return cell(v) })
		// keys of nested values are their canonical text; print it as is
		out.Row(e.Key, strings.Join(values.Slice(), ", "))
	}
	return out.Flush()
}
