// Package decomposition: in-place re-rooting.

package decomposition

// MakeRoot re-roots the tree at v by reversing every parent/child link on the
// path from the old root down to v. Bags and induced hyperedges do not move,
// so validity of the decomposition is preserved. The returned slice lists the
// nodes whose neighborhood changed — the full old-root→v path, old root
// first — which is exactly the relevant set for a local re-application of
// manipulation operations after the move.
// Complexity: O(depth of v)
func (t *Tree) MakeRoot(v NodeID) ([]NodeID, error) {
	if _, ok := t.nodes[v]; !ok {
		return nil, ErrNodeNotFound
	}
	if v == t.root {
		return []NodeID{v}, nil
	}

	// 1. Collect the path v → old root.
	path := []NodeID{v}
	for cur := t.nodes[v].parent; cur != 0; cur = t.nodes[cur].parent {
		path = append(path, cur)
	}

	// 2. Reverse each link: the former parent becomes a child.
	for i := len(path) - 1; i > 0; i-- {
		parent, child := path[i], path[i-1]
		pn := t.nodes[parent]
		pn.children = removeID(pn.children, child)
		cn := t.nodes[child]
		cn.children = append(cn.children, parent)
		pn.parent = child
	}
	t.nodes[v].parent = 0
	t.root = v

	// 3. Report the touched nodes, old root first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// removeID deletes the first occurrence of v from s.
func removeID(s []NodeID, v NodeID) []NodeID {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
