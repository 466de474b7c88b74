package main

import (
	"fmt"

	"github.com/elves/formula/pkg/formula"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "tokens <formula>",
		Short: "Print the tokens of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			input := args[0]

			tokens, err := formula.Tokenize(input, a.formulaOpts()...)
			if err != nil {
				showError(out, "formula", input, err)
				return statusError{StatusFormatError}
			}
			log.Debugf("%d tokens", len(tokens))
			fmt.Fprint(out, formula.Pprint(tokens))

			if validate {
				if err := formula.Validate(tokens); err != nil {
					showError(out, "formula", input, err)
					return statusError{StatusFormatError}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", true, "also check the grammar of the token sequence")

	return cmd
}
