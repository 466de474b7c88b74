package formula

import "fmt"

// Kind is the lexical category of a Token.
type Kind uint8

const (
	Number Kind = iota
	Variable
	Operator
	OpenParen
	CloseParen
)

var kindNames = [...]string{
	Number:     "Number",
	Variable:   "Variable",
	Operator:   "Operator",
	OpenParen:  "OpenParen",
	CloseParen: "CloseParen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Operand kinds are the ones that can stand on their own as a value.
func (k Kind) isOperand() bool { return k == Number || k == Variable }

// Token is a lexical unit of a formula. Text is exactly the input consumed,
// and Begin/End are byte offsets into the input.
type Token struct {
	Kind  Kind
	Text  string
	Begin int
	End   int
}

func (t Token) String() string {
	return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
}
