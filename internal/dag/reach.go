package dag

// Path returns the chain of node IDs leading from `fromID` to `toID` along
// dependent edges, both ends included, or nil if `toID` is unreachable. A
// node reaches itself with the one-element path [fromID].
func (g *Graph) Path(fromID, toID string) []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	start, ok := g.nodes[fromID]
	if !ok {
		return nil
	}
	if _, ok := g.nodes[toID]; !ok {
		return nil
	}
	if fromID == toID {
		return []string{fromID}
	}

	// Breadth-first so the reported path is a shortest one.
	parent := map[string]string{fromID: ""}
	queue := []*node{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, id := range ordered(cur.dependents) {
			if _, seen := parent[id]; seen {
				continue
			}
			parent[id] = cur.id
			if id == toID {
				return unwind(parent, fromID, toID)
			}
			queue = append(queue, g.nodes[id])
		}
	}
	return nil
}

func unwind(parent map[string]string, fromID, toID string) []string {
	var rev []string
	for id := toID; id != fromID; id = parent[id] {
		rev = append(rev, id)
	}
	rev = append(rev, fromID)
	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}

// Reachable reports whether `toID` can be reached from `fromID` by following
// dependent edges.
func (g *Graph) Reachable(fromID, toID string) bool {
	return g.Path(fromID, toID) != nil
}

// WillCreateCycle reports whether adding the edge fromID -> toID would close
// a cycle, i.e. whether fromID is already reachable from toID. A
// self-referencing edge always would.
func (g *Graph) WillCreateCycle(fromID, toID string) bool {
	if fromID == toID {
		return true
	}
	return g.Reachable(toID, fromID)
}
