// Command formula validates, tokenizes, normalizes and evaluates arithmetic
// formulas.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/elves/formula/pkg/formula"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("formula")

func main() {
	err := newRootCmd(os.Environ).Execute()
	if err != nil {
		var serr statusError
		if errors.As(err, &serr) {
			os.Exit(serr.status)
		}
		fmt.Fprintln(os.Stderr, "formula:", err)
		os.Exit(StatusUsageError)
	}
}

// app holds state shared by all subcommands.
type app struct {
	environ func() []string
	flags   cliFlags
	cfg     config
}

func (a *app) formulaOpts() []formula.Option {
	return []formula.Option{formula.WithWhitespace(a.cfg.Whitespace)}
}

func newRootCmd(environ func() []string) *cobra.Command {
	a := &app{environ: environ}
	cmd := &cobra.Command{
		Use:           "formula",
		Short:         "Check and evaluate arithmetic formulas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.flags, a.environ(), cmd.Flags().Changed("env-file"))
			if err != nil {
				return err
			}
			a.cfg = cfg
			commonlog.Configure(cfg.Verbosity, nil)
			log.Debugf("whitespace mode %d, vars file %q", cfg.Whitespace, cfg.VarsFile)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.flags.EnvFile, "env-file", ".env", "file with environment variables to load")
	cmd.PersistentFlags().StringVar(&a.flags.Whitespace, "whitespace", "", "token separators: space or any (default space)")
	cmd.PersistentFlags().CountVarP(&a.flags.Verbosity, "verbose", "v", "increase log verbosity")

	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newTokensCmd(a))
	cmd.AddCommand(newNormalizeCmd(a))
	cmd.AddCommand(newEvalCmd(a))

	return cmd
}
