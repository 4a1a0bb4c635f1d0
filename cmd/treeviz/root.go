package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// NewRootCmd creates the top-level "treeviz" command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "treeviz",
		Short: "Inspect task hierarchies",
		Long: "Treeviz builds task hierarchies from treefile descriptions and\n" +
			"prints them, and demonstrates stop/terminate/consume cascades.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.AddCommand(newPrintCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
