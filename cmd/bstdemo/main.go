package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "bstdemo",
		Short: "Build a balanced BST from random values and walk it",
		Long: `bstdemo builds a tree from random values, prints it with its four
traversals, unbalances it with inserts above the value range and
rebalances it again.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", opts.count, "number of random values to build the tree from")
	flags.IntVar(&opts.max, "max", opts.max, "upper bound of the random values")
	flags.IntVarP(&opts.inserts, "inserts", "i", opts.inserts, "values inserted above --max before rebalancing")
	flags.Int64Var(&opts.seed, "seed", opts.seed, "random seed, 0 picks one from the clock")
	flags.BoolVar(&opts.plain, "plain", opts.plain, "disable styled headings")

	return cmd
}
