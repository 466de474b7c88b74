package formula

import (
	"bytes"
	"fmt"
)

// Pprint returns a human-readable dump of a token sequence, one token per
// line.
func Pprint(tokens []Token) string {
	var b bytes.Buffer
	pprintTokens(&b, "", tokens)
	return b.String()
}

// PprintFormula is like Pprint, but also shows the canonical form.
func PprintFormula(f *Formula) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Formula %q\n", f.source)
	fmt.Fprintf(&b, "  .Canonical = %q\n", f.canonical)
	b.WriteString("  .Tokens =\n")
	pprintTokens(&b, "    ", f.tokens)
	return b.String()
}

func pprintTokens(buf *bytes.Buffer, indent string, tokens []Token) {
	width := 0
	for _, tok := range tokens {
		if n := len(tok.Kind.String()); n > width {
			width = n
		}
	}
	for i, tok := range tokens {
		fmt.Fprintf(buf, "%s%d %-*v %d-%d %q\n", indent, i, width, tok.Kind, tok.Begin, tok.End, tok.Text)
	}
}
