package formula

import (
	"fmt"
	"strings"
)

// maxIndent caps indentation. Deeper nodes print their depth instead.
const maxIndent = 32

// Dump renders the tree one node per line, indented by depth. Only leaves
// carry their source text, e.g.
//
//	Program [0,5)
//	  Eqop [0,1) "="
//	  Plusop [1,5)
//	    CellToken [1,3) "A1"
//	    Number [4,5) "1"
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	if depth > maxIndent {
		fmt.Fprintf(b, "%s(%d) ", strings.Repeat("  ", maxIndent), depth)
	} else {
		b.WriteString(strings.Repeat("  ", depth))
	}
	fmt.Fprintf(b, "%s [%d,%d)", n.Kind, n.Span.From, n.Span.To)
	if len(n.Children) == 0 {
		fmt.Fprintf(b, " %q", n.Text)
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		dump(b, c, depth+1)
	}
}
