package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "descent",
		Short: "First-order minimization of scalar objective functions",
		Long: `descent minimizes scalar objective functions over real vectors using
gradient descent with a backtracking Armijo line search. Gradients are
analytic where a benchmark problem defines them, or synthesized with
central finite differences.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "descent %s\n", version)
		},
	}
}
