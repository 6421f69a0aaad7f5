// Package commands provides the CLI commands for the flist tool.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "flist",
	Short: "Group, reduce, join and de-duplicate row files",
	Long: `flist reads separated row files described by a YAML schema and runs
collection operations over the rows.

A schema names the columns, gives each a type and optionally a shape pattern:

  separator: ","
  columns:
    - {name: id, type: int}
    - {name: city, type: string}
  pattern: [id, city]

Usage:
  flist group FILE -s schema.yaml --key city --value id
  flist reduce FILE -s schema.yaml --key city --value pop --op sum
  flist join LEFT RIGHT --left-schema a.yaml --right-schema b.yaml --on id
  flist distinct FILE -s schema.yaml --by city
  flist version`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd.ErrOrStderr(), verbose)
		switch outputFormat {
		case formatAuto, formatTable, formatTSV:
			return nil
		}
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", outputFormat, formatAuto, formatTable, formatTSV)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func init() {
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(reduceCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(distinctCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatAuto, "Output format: auto, table or tsv")
}
