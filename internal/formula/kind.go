package formula

import "fmt"

// Kind identifies the grammar production a Node represents. The set is
// closed: evaluators switch over every Kind and treat anything else as a
// programming error.
type Kind uint8

const (
	KindInvalid Kind = iota

	Program // children: Eqop marker, expression
	Eqop    // leading "=" of a Program (no children) or "=" comparison (left, right)

	Number    // numeric literal
	BoolToken // TRUE or FALSE
	TextToken // double-quoted string literal
	NameToken // bare identifier that is not a cell reference
	CellToken // grid reference such as A1

	Plusop    // left, right; or a single operand for prefix "+"
	Minop     // left, right; or a single operand for prefix "-"
	Mulop     // left, right
	Divop     // left, right
	Expop     // left, right
	Concatop  // left, right
	Percentop // operand

	Gtop  // left, right
	Ltop  // left, right
	Gteop // left, right
	Lteop // left, right
	Neqop // left, right

	OpenParen  // "(" marker
	CloseParen // ")" marker
	Group      // children: OpenParen, expression, CloseParen
	Call       // children: NameToken, OpenParen, arguments..., CloseParen

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid: "Invalid",
	Program:     "Program",
	Eqop:        "Eqop",
	Number:      "Number",
	BoolToken:   "BoolToken",
	TextToken:   "TextToken",
	NameToken:   "NameToken",
	CellToken:   "CellToken",
	Plusop:      "Plusop",
	Minop:       "Minop",
	Mulop:       "Mulop",
	Divop:       "Divop",
	Expop:       "Expop",
	Concatop:    "Concatop",
	Percentop:   "Percentop",
	Gtop:        "Gtop",
	Ltop:        "Ltop",
	Gteop:       "Gteop",
	Lteop:       "Lteop",
	Neqop:       "Neqop",
	OpenParen:   "OpenParen",
	CloseParen:  "CloseParen",
	Group:       "Group",
	Call:        "Call",
}

// String returns the production name, e.g. "CellToken".
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
