package main

import "fmt"

// Exit statuses of the formula command.
//
// The practice of using 0 for no error is really well known, so we don't define
// a constant for it; code should just use 0.
const (
	// Bad flags, unreadable files and other problems not caused by a formula.
	StatusUsageError = 1
	// At least one formula was malformed. Same as the status shells use for
	// syntax errors.
	StatusFormatError = 2
	// A well-formed formula could not be evaluated.
	StatusEvalError = 3
)

// statusError is returned by commands that have already reported the
// problem to the user and only need the process to exit with a status.
type statusError struct{ status int }

func (err statusError) Error() string { return fmt.Sprintf("exit status %d", err.status) }
