package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/baxromumarov/tasktree"
)

// newDemoCmd creates the "demo" subcommand: build a canned hierarchy and
// narrate the stop, terminate, and consume cascades over it.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through stop, terminate, and consume on a sample tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	loud := func(name string) tasktree.Option {
		return tasktree.WithStop(func(n *tasktree.Node, deferLater bool) {
			fmt.Fprintf(w, "  stop(%s) deferLater=%v\n", name, deferLater)
			n.StopChildren(deferLater)
		})
	}

	root := tasktree.New(tasktree.WithKind("reactor"), tasktree.WithAnnotation("main loop"))
	worker := tasktree.New(
		tasktree.WithParent(root),
		tasktree.WithKind("worker"),
		tasktree.WithAnnotation("serving requests"),
		loud("worker"),
	)
	tasktree.New(
		tasktree.WithParent(root),
		tasktree.WithKind("monitor"),
		tasktree.WithAnnotation("sampling metrics"),
		tasktree.WithTransient(),
		loud("monitor"),
	)

	fmt.Fprintln(w, "hierarchy:")
	if err := root.PrintHierarchy(w, false); err != nil {
		return err
	}

	fmt.Fprintln(w, "stop cascade (skips the transient monitor):")
	root.Stop(false)

	fmt.Fprintln(w, "terminate cascade (reaches everything):")
	root.Terminate()

	worker.SetParent(nil)
	fmt.Fprintf(w, "after the worker leaves, finished=%v with %d child(ren) left\n",
		root.Finished(), root.Children().Len())

	return nil
}
