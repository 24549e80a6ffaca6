package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func newRPNCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rpn expression...",
		Short: "Print expressions in postfix notation",
		Long: `Prints the postfix (reverse Polish) form of each expression, the order in
which calc applies operators. Malformed expressions are printed as they would
be evaluated.

Example:
  calc rpn '2+3×4'    # 2 3 4 × +`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), calc.Postfix(arg))
			}
			return nil
		},
	}
}
