package formula

import (
	"fmt"

	"src.elv.sh/pkg/diag"
)

// Reason identifies which rule a malformed formula broke.
type Reason uint8

const (
	NoTokens Reason = iota + 1
	InvalidToken
	UnmatchedClose
	UnbalancedParens
	BadFirstToken
	BadLastToken
	BadAfterOpening
	BadAfterOperand
)

var reasonNames = [...]string{
	NoTokens:         "no tokens",
	InvalidToken:     "invalid token",
	UnmatchedClose:   "unmatched closing parenthesis",
	UnbalancedParens: "unbalanced parentheses",
	BadFirstToken:    "invalid first token",
	BadLastToken:     "invalid last token",
	BadAfterOpening:  "invalid token after opening parenthesis or operator",
	BadAfterOperand:  "invalid token after operand or closing parenthesis",
}

func (r Reason) String() string {
	if r > 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// FormatError is returned when a formula is lexically or grammatically
// malformed. The Ranging points at the offending part of the input.
type FormatError struct {
	Reason  Reason
	Message string
	diag.Ranging
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("%v-%v: %v", err.From, err.To, err.Message)
}

// Is reports whether target is a *FormatError with the same Reason, so that
// callers can match on a reason with errors.Is(err, &FormatError{Reason: r}).
func (err *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Reason == err.Reason
}

func errorf(r Reason, from, to int, format string, a ...any) *FormatError {
	return &FormatError{r, fmt.Sprintf(format, a...), diag.Ranging{From: from, To: to}}
}
