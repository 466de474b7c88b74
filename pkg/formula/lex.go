package formula

import "unicode/utf8"

// Whitespace selects which characters separate tokens.
type Whitespace uint8

const (
	// SpaceOnly treats only ' ' as a separator. Any other whitespace is an
	// invalid token.
	SpaceOnly Whitespace = iota
	// AnyWhitespace also accepts tabs, newlines, carriage returns, vertical
	// tabs and form feeds.
	AnyWhitespace
)

func (w Whitespace) set() string {
	if w == AnyWhitespace {
		return " \t\n\r\v\f"
	}
	return " "
}

const (
	digitSet     = "0123456789"
	operatorSet  = "+-*/"
	signSet      = "+-"
	exponentSet  = "eE"
	decimalPoint = "."
)

// Tokenize breaks s into tokens. It stops at the first substring that is not
// a valid token and returns a *FormatError pointing at it.
func Tokenize(s string, opts ...Option) ([]Token, error) {
	return newConfig(opts).tokenize(s)
}

func (c config) tokenize(s string) ([]Token, error) {
	sc := &scanner{text: s}
	var tokens []Token
	for {
		sc.consumeWhileIn(c.whitespace.set())
		if sc.eof() {
			return tokens, nil
		}
		tok, err := sc.token()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// token scans one token at the current position. Categories are tried in a
// fixed order: number, variable, operator, parenthesis.
func (sc *scanner) token() (Token, *FormatError) {
	begin := sc.pos
	kind, err := sc.scanKind()
	if err != nil {
		return Token{}, err
	}
	if kind.isOperand() && isWordByte(sc.peek()) {
		// "2a", "a2a", "1.2.3": the run is one malformed token, not several
		// valid ones.
		sc.consumeWhile(isWordByte)
		return Token{}, sc.invalid(begin)
	}
	return Token{kind, sc.text[begin:sc.pos], begin, sc.pos}, nil
}

func (sc *scanner) scanKind() (Kind, *FormatError) {
	begin := sc.pos
	if sc.consumeWhileIn(digitSet) != "" {
		sc.consumePrefixIn(decimalPoint)
		sc.consumeWhileIn(digitSet)
		if sc.consumeRuneIn(exponentSet) != "" {
			sc.consumeRuneIn(signSet)
			if sc.consumeWhileIn(digitSet) == "" {
				sc.consumeWhile(isWordByte)
				return 0, errorf(InvalidToken, begin, sc.pos,
					"malformed exponent in number %q", sc.text[begin:sc.pos])
			}
		}
		return Number, nil
	}
	if sc.consumeWhile(isLetter) != "" {
		if sc.consumeWhileIn(digitSet) == "" {
			sc.consumeWhile(isWordByte)
			return 0, sc.invalid(begin)
		}
		return Variable, nil
	}
	if sc.consumeRuneIn(operatorSet) != "" {
		return Operator, nil
	}
	switch sc.consumeRuneIn("()") {
	case "(":
		return OpenParen, nil
	case ")":
		return CloseParen, nil
	}
	// Consume a whole rune so that the diagnostic does not split a multi-byte
	// character.
	_, size := utf8.DecodeRuneInString(sc.rest())
	sc.consume(size)
	return 0, sc.invalid(begin)
}

func (sc *scanner) invalid(begin int) *FormatError {
	return errorf(InvalidToken, begin, sc.pos, "invalid token %q", sc.text[begin:sc.pos])
}

// Note: _ is not a letter, and neither is any non-ASCII rune.
func isLetter(b byte) bool   { return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' }
func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isWordByte(b byte) bool { return isLetter(b) || isDigit(b) || b == '.' }

// IsVariable reports whether name is exactly one variable token.
func IsVariable(name string) bool {
	sc := &scanner{text: name}
	tok, err := sc.token()
	return err == nil && tok.Kind == Variable && sc.eof()
}
