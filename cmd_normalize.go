package main

import (
	"fmt"

	"github.com/elves/formula/pkg/formula"
	"github.com/spf13/cobra"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "normalize <formula>...",
		Short: "Print the canonical form of formulas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			malformed := false
			for i, arg := range args {
				f, err := formula.Parse(arg, a.formulaOpts()...)
				if err != nil {
					malformed = true
					showError(out, fmt.Sprintf("arg %d", i+1), arg, err)
					continue
				}
				if verbose {
					fmt.Fprint(out, formula.PprintFormula(f))
				} else {
					fmt.Fprintln(out, f)
				}
			}
			if malformed {
				return statusError{StatusFormatError}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verbose, "show-tokens", false, "also print the tokens of each formula")

	return cmd
}
