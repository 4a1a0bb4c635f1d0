package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baxromumarov/tasktree/treefile"
)

// newPrintCmd creates the "print" subcommand: load a treefile and write the
// indented hierarchy to stdout.
func newPrintCmd() *cobra.Command {
	var withBacktrace bool

	cmd := &cobra.Command{
		Use:   "print <treefile>",
		Short: "Print the hierarchy described by a treefile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := treefile.Load(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			return root.PrintHierarchy(cmd.OutOrStdout(), withBacktrace)
		},
	}

	cmd.Flags().BoolVar(&withBacktrace, "backtrace", false, "include node backtraces")

	return cmd
}
