package main

import (
	"fmt"

	"github.com/elves/formula/pkg/formula"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [formula...]",
		Short: "Report whether formulas are well-formed",
		Long: "Check each formula given as an argument. Without arguments, check one " +
			"formula per line of standard input, prompting when it is a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			checked, malformed := 0, 0
			check := func(name, input string) {
				checked++
				if _, err := formula.Parse(input, a.formulaOpts()...); err != nil {
					malformed++
					showError(out, name, input, err)
					return
				}
				fmt.Fprintf(out, "%s: ok\n", name)
			}

			if len(args) > 0 {
				for i, arg := range args {
					check(fmt.Sprintf("arg %d", i+1), arg)
				}
			} else if err := eachLine(cmd.InOrStdin(), out, check); err != nil {
				return err
			}

			log.Infof("checked %d formulas, %d malformed", checked, malformed)
			if malformed > 0 {
				return statusError{StatusFormatError}
			}
			return nil
		},
	}
}
