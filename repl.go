package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elves/formula/pkg/formula"
	"src.elv.sh/pkg/diag"
	"src.elv.sh/pkg/sys"
)

const prompt = "formula> "

// eachLine calls f with each line read from in. When in is a terminal, a
// prompt is written to out before each line and empty lines are skipped.
func eachLine(in io.Reader, out io.Writer, f func(name, line string)) error {
	interactive := false
	if file, ok := in.(*os.File); ok {
		interactive = sys.IsATTY(file.Fd())
	}
	scanner := bufio.NewScanner(in)
	for lineno := 1; ; lineno++ {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if interactive && strings.TrimSpace(line) == "" {
			continue
		}
		f(fmt.Sprintf("line %d", lineno), line)
	}
	if interactive {
		fmt.Fprintln(out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// showError writes err to w. Format errors are shown with the offending part
// of the input highlighted.
func showError(w io.Writer, name, input string, err error) {
	var ferr *formula.FormatError
	if errors.As(err, &ferr) {
		ctx := diag.NewContext(name, input, ferr)
		fmt.Fprintf(w, "%s: %s: %s\n", name, ferr.Reason, ferr.Message)
		fmt.Fprintf(w, "  %s\n", ctx.ShowCompact(""))
		return
	}
	fmt.Fprintf(w, "%s: %v\n", name, err)
}
