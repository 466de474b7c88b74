package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/elves/formula/pkg/arith"
	"github.com/elves/formula/pkg/formula"
	"github.com/elves/formula/pkg/vars"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var varsFile string
	var assignments []string

	cmd := &cobra.Command{
		Use:   "eval <formula>",
		Short: "Evaluate a formula",
		Long: "Evaluate a formula. Variables are bound from " + varEnvPrefix + "<NAME> " +
			"environment variables, then the YAML vars file, then --var flags; later " +
			"sources win.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			input := args[0]

			f, err := formula.Parse(input, a.formulaOpts()...)
			if err != nil {
				showError(out, "formula", input, err)
				return statusError{StatusFormatError}
			}

			if varsFile == "" {
				varsFile = a.cfg.VarsFile
			}
			bindings, err := a.bindings(varsFile, assignments)
			if err != nil {
				return err
			}

			var unset []string
			for _, name := range f.Variables() {
				if _, err := bindings.Lookup(name); err != nil {
					unset = append(unset, name)
				}
			}
			if len(unset) > 0 {
				fmt.Fprintf(out, "error: unset variables: %s\n", strings.Join(unset, ", "))
				return statusError{StatusEvalError}
			}

			v, err := arith.Eval(f, bindings.Lookup)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				return statusError{StatusEvalError}
			}
			fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}

	cmd.Flags().StringVar(&varsFile, "vars", "", "YAML file mapping variable names to values (default $"+varsFileEnv+")")
	cmd.Flags().StringArrayVar(&assignments, "var", nil, "bind a variable, as NAME=VALUE (repeatable)")

	return cmd
}

func (a *app) bindings(varsFile string, assignments []string) (vars.Bindings, error) {
	env, err := vars.FromEnv(a.cfg.Environ, varEnvPrefix)
	if err != nil {
		return vars.Bindings{}, err
	}
	all := []vars.Bindings{env}

	if varsFile != "" {
		file, err := os.Open(varsFile)
		if err != nil {
			return vars.Bindings{}, fmt.Errorf("open vars file: %w", err)
		}
		defer file.Close()
		fromFile, err := vars.LoadYAML(file)
		if err != nil {
			return vars.Bindings{}, fmt.Errorf("%s: %w", varsFile, err)
		}
		all = append(all, fromFile)
	}

	for _, s := range assignments {
		b, err := vars.ParseAssignment(s)
		if err != nil {
			return vars.Bindings{}, fmt.Errorf("--var: %w", err)
		}
		all = append(all, b)
	}

	merged := vars.Bindings{}.Merge(all...)
	log.Infof("%d variables bound", merged.Len())
	return merged, nil
}
