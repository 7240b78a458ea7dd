package formula

import (
	"strings"
)

// Span is a half-open byte range [From, To) into the formula source.
type Span struct {
	From int
	To   int
}

// Node is one production in a parsed formula.
type Node struct {
	Kind     Kind
	Span     Span
	Text     string // source text covered by Span
	Children []*Node
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Ref returns the normalized cell key of a CellToken, e.g. "a1" becomes "A1".
func (n *Node) Ref() string {
	return strings.ToUpper(n.Text)
}

// Literal returns the decoded contents of a TextToken: surrounding quotes
// removed and doubled quotes collapsed.
func (n *Node) Literal() string {
	s := n.Text
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `""`, `"`)
}

// Expr returns the expression of a Program or Group node.
func (n *Node) Expr() *Node {
	switch n.Kind {
	case Program, Group:
		return n.Child(1)
	}
	return nil
}
