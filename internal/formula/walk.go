package formula

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the node just visited.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// References returns every CellToken under n in source order. Duplicates are
// kept; callers that need a set dedupe by Ref.
func References(n *Node) []*Node {
	var refs []*Node
	Walk(n, func(c *Node) bool {
		if c.Kind == CellToken {
			refs = append(refs, c)
		}
		return true
	})
	return refs
}
