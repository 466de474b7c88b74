package formula

// Validate checks the grammar of a token sequence in a single left-to-right
// pass and returns the first violation found.
func Validate(tokens []Token) error {
	if err := validate(tokens); err != nil {
		return err
	}
	return nil
}

func validate(tokens []Token) *FormatError {
	if !hasTokens(tokens) {
		return errorf(NoTokens, 0, 0, "formula contains no tokens")
	}
	balance := 0
	for i, tok := range tokens {
		if !validKind(tok.Kind) {
			return errorf(InvalidToken, tok.Begin, tok.End, "invalid token %q", tok.Text)
		}
		if i == 0 {
			if !validFirst(tok.Kind) {
				return errorf(BadFirstToken, tok.Begin, tok.End,
					"formula cannot start with %v %q", tok.Kind, tok.Text)
			}
		} else if prev := tokens[i-1]; opensOperand(prev.Kind) {
			if !validAfterOpening(tok.Kind) {
				return errorf(BadAfterOpening, tok.Begin, tok.End,
					"%v %q cannot follow %v %q", tok.Kind, tok.Text, prev.Kind, prev.Text)
			}
		} else if !validAfterOperand(tok.Kind) {
			return errorf(BadAfterOperand, tok.Begin, tok.End,
				"%v %q cannot follow %v %q", tok.Kind, tok.Text, prev.Kind, prev.Text)
		}
		balance = nextBalance(balance, tok.Kind)
		if !closingParenOK(balance) {
			return errorf(UnmatchedClose, tok.Begin, tok.End,
				"closing parenthesis has no matching opening parenthesis")
		}
	}
	last := tokens[len(tokens)-1]
	if !validLast(last.Kind) {
		return errorf(BadLastToken, last.Begin, last.End,
			"formula cannot end with %v %q", last.Kind, last.Text)
	}
	if !balancedParens(balance) {
		return errorf(UnbalancedParens, last.End, last.End,
			"%d unclosed opening parenthesis", balance)
	}
	return nil
}

// Rule predicates. Each corresponds to one grammar rule and is checked by
// validate at the point where it can first be decided.

// One token rule.
func hasTokens(tokens []Token) bool { return len(tokens) > 0 }

// Valid token rule. Tokenize only produces valid kinds; this guards token
// sequences built elsewhere.
func validKind(k Kind) bool { return k <= CloseParen }

// Closing parenthesis rule: the running balance never goes negative.
func closingParenOK(balance int) bool { return balance >= 0 }

// Balanced parentheses rule: the final balance is zero.
func balancedParens(balance int) bool { return balance == 0 }

func nextBalance(balance int, k Kind) int {
	switch k {
	case OpenParen:
		return balance + 1
	case CloseParen:
		return balance - 1
	}
	return balance
}

// First token rule.
func validFirst(k Kind) bool { return k.isOperand() || k == OpenParen }

// Last token rule.
func validLast(k Kind) bool { return k.isOperand() || k == CloseParen }

// Reports whether a token of kind k must be followed by the start of an
// operand, which is when the parenthesis/operator following rule applies
// instead of the extra following rule.
func opensOperand(k Kind) bool { return k == OpenParen || k == Operator }

// Parenthesis/operator following rule.
func validAfterOpening(k Kind) bool { return k.isOperand() || k == OpenParen }

// Extra following rule.
func validAfterOperand(k Kind) bool { return k == Operator || k == CloseParen }
