package formula_test

import (
	"errors"
	"testing"

	"github.com/elves/formula/pkg/formula"
	"github.com/google/go-cmp/cmp"
	"src.elv.sh/pkg/must"
)

func TestParse(t *testing.T) {
	f, err := formula.Parse("(r2 - 5.5)")
	if err != nil {
		t.Fatalf("got error %v", err)
	}
	want := []formula.Token{
		{Kind: formula.OpenParen, Text: "(", Begin: 0, End: 1},
		{Kind: formula.Variable, Text: "r2", Begin: 1, End: 3},
		{Kind: formula.Operator, Text: "-", Begin: 4, End: 5},
		{Kind: formula.Number, Text: "5.5", Begin: 6, End: 9},
		{Kind: formula.CloseParen, Text: ")", Begin: 9, End: 10},
	}
	if diff := cmp.Diff(want, f.Tokens()); diff != "" {
		t.Errorf("tokens (-want+got):\n%v", diff)
	}
	if f.Source() != "(r2 - 5.5)" {
		t.Errorf("Source() -> %q", f.Source())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		code   string
		reason formula.Reason
	}{
		{"", formula.NoTokens},
		{"a + a", formula.InvalidToken},
		{"2a + 2a", formula.InvalidToken},
		{"(1 + 1) + 1) + (1 + 1", formula.UnmatchedClose},
		{") 1 + 1", formula.BadFirstToken},
		{"1 1+2", formula.BadAfterOperand},
		// Tokenizer errors come before grammar errors.
		{") 1 + a", formula.InvalidToken},
	}
	for _, test := range tests {
		f, err := formula.Parse(test.code)
		if f != nil {
			t.Errorf("Parse(%q) returned a formula", test.code)
		}
		if !errors.Is(err, &formula.FormatError{Reason: test.reason}) {
			t.Errorf("Parse(%q) -> %v, want reason %v", test.code, err, test.reason)
		}
	}
}

func TestParse_Whitespace(t *testing.T) {
	if _, err := formula.Parse("1 +\t2"); err == nil {
		t.Errorf("tab accepted with default whitespace")
	}
	if _, err := formula.Parse("1 +\t2\n", formula.WithWhitespace(formula.AnyWhitespace)); err != nil {
		t.Errorf("tab rejected with AnyWhitespace: %v", err)
	}
}

func TestFormula_TokensIsCopy(t *testing.T) {
	f := formula.MustParse("x1 + 1")
	tokens := f.Tokens()
	tokens[0].Text = "y2"
	if got := f.Tokens()[0].Text; got != "x1" {
		t.Errorf("mutating Tokens() result changed formula: %q", got)
	}
}

func TestFormula_String(t *testing.T) {
	tests := []struct{ code, want string }{
		{"1", "1"},
		{"x1 + 1.0", "X1+1"},
		{"2e5 + 2E5", "200000+200000"},
		{"3.5E-6 * ab12", "3.5e-06*AB12"},
		{"( a1 - 0. ) / 4", "(A1-0)/4"},
		{"1e400", "+Inf"},
	}
	for _, test := range tests {
		if got := formula.MustParse(test.code).String(); got != test.want {
			t.Errorf("MustParse(%q).String() -> %q, want %q", test.code, got, test.want)
		}
	}
}

func TestFormula_Equal(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"x1+y1", "X1 + Y1", true},
		{"2.000 + x1", "2 + X1", true},
		{"1e2", "100", true},
		{"x1+y1", "y1+x1", false},
		{"(1)", "1", false},
	}
	for _, test := range tests {
		a, b := formula.MustParse(test.a), formula.MustParse(test.b)
		if got := a.Equal(b); got != test.want {
			t.Errorf("%q.Equal(%q) -> %v, want %v", test.a, test.b, got, test.want)
		}
		if got := b.Equal(a); got != test.want {
			t.Errorf("%q.Equal(%q) -> %v, want %v", test.b, test.a, got, test.want)
		}
	}
	var nilFormula *formula.Formula
	if nilFormula.Equal(formula.MustParse("1")) {
		t.Errorf("nil formula equal to non-nil")
	}
}

func TestFormula_Variables(t *testing.T) {
	f := formula.MustParse("b2 + a1 * (B2 - x10) / A1")
	if diff := cmp.Diff([]string{"A1", "B2", "X10"}, f.Variables()); diff != "" {
		t.Errorf("Variables() (-want+got):\n%v", diff)
	}
	if got := formula.MustParse("1 + 2").Variables(); got != nil {
		t.Errorf("Variables() -> %v, want nil", got)
	}
}

func TestFormula_Revalidate(t *testing.T) {
	for _, code := range []string{"(r2 - 5.5)", "2e5 + 2e5", " ( ( a1 ) ) * 3 "} {
		f := formula.MustParse(code)
		var joined string
		for _, tok := range f.Tokens() {
			joined += tok.Text
		}
		g := must.OK1(formula.Parse(joined))
		if !f.Equal(g) {
			t.Errorf("re-parsing %q as %q gives %q, want %q", code, joined, g, f)
		}
		// Canonical forms are themselves valid formulas.
		if h := must.OK1(formula.Parse(f.String())); !f.Equal(h) {
			t.Errorf("re-parsing canonical %q gives %q", f, h)
		}
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse did not panic")
		}
	}()
	formula.MustParse("1 +")
}

func TestPprint(t *testing.T) {
	tokens := must.OK1(formula.Tokenize("(x1+2)"))
	want := "" +
		"0 OpenParen  0-1 \"(\"\n" +
		"1 Variable   1-3 \"x1\"\n" +
		"2 Operator   3-4 \"+\"\n" +
		"3 Number     4-5 \"2\"\n" +
		"4 CloseParen 5-6 \")\"\n"
	if diff := cmp.Diff(want, formula.Pprint(tokens)); diff != "" {
		t.Errorf("Pprint (-want+got):\n%v", diff)
	}

	wantFormula := "" +
		"Formula \"x1 + 2\"\n" +
		"  .Canonical = \"X1+2\"\n" +
		"  .Tokens =\n" +
		"    0 Variable 0-2 \"x1\"\n" +
		"    1 Operator 3-4 \"+\"\n" +
		"    2 Number   5-6 \"2\"\n"
	if diff := cmp.Diff(wantFormula, formula.PprintFormula(formula.MustParse("x1 + 2"))); diff != "" {
		t.Errorf("PprintFormula (-want+got):\n%v", diff)
	}
}
