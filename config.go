package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/elves/formula/pkg/formula"
	"github.com/joho/godotenv"
)

// Environment variables read by the formula command. Bindings for evaluation
// use varEnvPrefix followed by the variable name.
const (
	whitespaceEnv = "FORMULA_WHITESPACE"
	verbosityEnv  = "FORMULA_VERBOSITY"
	varsFileEnv   = "FORMULA_VARS_FILE"
	varEnvPrefix  = "FORMULA_VAR_"
)

type config struct {
	Whitespace formula.Whitespace
	Verbosity  int
	VarsFile   string
	// Environment entries with the .env file merged in; real environment
	// variables take precedence.
	Environ []string
}

type cliFlags struct {
	EnvFile    string
	Whitespace string
	Verbosity  int
}

// loadConfig combines the .env file, the environment and command-line flags,
// in increasing order of precedence.
func loadConfig(flags cliFlags, environ []string, envFileExplicit bool) (config, error) {
	env := make(map[string]string)
	dotenv, err := godotenv.Read(flags.EnvFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || envFileExplicit {
			return config{}, fmt.Errorf("read env file: %w", err)
		}
		log.Debugf("no env file %s, using the environment only", flags.EnvFile)
	}
	for k, v := range dotenv {
		env[k] = v
	}
	for _, entry := range environ {
		k, v, _ := strings.Cut(entry, "=")
		env[k] = v
	}

	cfg := config{VarsFile: env[varsFileEnv]}
	for k, v := range env {
		cfg.Environ = append(cfg.Environ, k+"="+v)
	}

	whitespace := env[whitespaceEnv]
	if flags.Whitespace != "" {
		whitespace = flags.Whitespace
	}
	cfg.Whitespace, err = parseWhitespace(whitespace)
	if err != nil {
		return config{}, err
	}

	if s := env[verbosityEnv]; s != "" {
		cfg.Verbosity, err = strconv.Atoi(s)
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", verbosityEnv, err)
		}
	}
	if flags.Verbosity > 0 {
		cfg.Verbosity = flags.Verbosity
	}
	return cfg, nil
}

func parseWhitespace(s string) (formula.Whitespace, error) {
	switch s {
	case "", "space":
		return formula.SpaceOnly, nil
	case "any":
		return formula.AnyWhitespace, nil
	default:
		return 0, fmt.Errorf("invalid whitespace mode %q, want space or any", s)
	}
}
