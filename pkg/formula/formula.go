// Package formula implements tokenizing and validating of arithmetic formulas
// made up of numbers, variables, the four binary operators and parentheses.
package formula

import (
	"sort"
	"strconv"
	"strings"
)

// Formula is a validated, immutable token sequence. The zero value is not
// useful; construct one with Parse.
type Formula struct {
	source    string
	tokens    []Token
	canonical string
}

// Parse tokenizes and validates text. It either returns a Formula satisfying
// every grammar rule, or a *FormatError describing the first violation.
func Parse(text string, opts ...Option) (*Formula, error) {
	tokens, err := newConfig(opts).tokenize(text)
	if err != nil {
		return nil, err
	}
	if err := validate(tokens); err != nil {
		return nil, err
	}
	return &Formula{text, tokens, canonicalize(tokens)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, opts ...Option) *Formula {
	f, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Source returns the text the formula was parsed from.
func (f *Formula) Source() string { return f.source }

// Tokens returns a copy of the token sequence.
func (f *Formula) Tokens() []Token {
	return append([]Token(nil), f.tokens...)
}

// String returns the canonical form of the formula: no whitespace, variable
// names upper-cased and numbers in their shortest float64 representation.
// Two formulas are equal iff their canonical forms are.
func (f *Formula) String() string { return f.canonical }

// Equal reports whether f and g have the same canonical form.
func (f *Formula) Equal(g *Formula) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.canonical == g.canonical
}

// Variables returns the distinct normalized variable names, sorted.
func (f *Formula) Variables() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, tok := range f.tokens {
		if tok.Kind != Variable {
			continue
		}
		name := NormalizeVariable(tok.Text)
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// NormalizeVariable returns the canonical spelling of a variable name.
func NormalizeVariable(name string) string { return strings.ToUpper(name) }

// ParseNumber converts the text of a Number token to a float64. Literals too
// large for a float64 become ±Inf.
func ParseNumber(text string) float64 {
	// Number tokens always have a valid syntax for ParseFloat, so the only
	// possible error is ErrRange, in which case v is already ±Inf or 0.
	v, _ := strconv.ParseFloat(text, 64)
	return v
}

func canonicalize(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case Number:
			sb.WriteString(strconv.FormatFloat(ParseNumber(tok.Text), 'g', -1, 64))
		case Variable:
			sb.WriteString(NormalizeVariable(tok.Text))
		default:
			sb.WriteString(tok.Text)
		}
	}
	return sb.String()
}
