// Package decomposition: invariant validation.
//
// Validate checks the classical tree-decomposition properties against the
// decomposed graph. The running-intersection check uses union-find: for each
// graph vertex the nodes whose bag contains it are merged along tree edges;
// the vertex's occurrence set is connected iff a single set remains.

package decomposition

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/treedec/hypergraph"
)

// Sentinel errors reported by Validate.
var (
	// ErrBrokenTree indicates a structural defect: duplicated child entries,
	// mismatched parent pointers, or unreachable nodes.
	ErrBrokenTree = errors.New("decomposition: malformed tree structure")

	// ErrBagNotSubset indicates a bag vertex missing from the graph.
	ErrBagNotSubset = errors.New("decomposition: bag is not a subset of the graph vertices")

	// ErrNotConnected indicates a vertex whose occurrence set is empty or
	// spread over disconnected parts of the tree.
	ErrNotConnected = errors.New("decomposition: running intersection property violated")

	// ErrEdgeNotCovered indicates a hyperedge contained in no bag.
	ErrEdgeNotCovered = errors.New("decomposition: hyperedge covered by no bag")

	// ErrInducedMismatch indicates a node whose stored induced hyperedges
	// disagree with its bag.
	ErrInducedMismatch = errors.New("decomposition: induced hyperedges out of date")
)

// Validate checks all decomposition invariants of t against g: tree shape,
// bag membership, vertex coverage with running intersection, hyperedge
// coverage, and induced-hyperedge correctness. The first violation found is
// returned; nil means the decomposition is valid.
// Complexity: O(n·V + n·E·k) dominated by the coverage scans.
func Validate(g hypergraph.Reader, t *Tree) error {
	if t.root == 0 {
		if len(t.nodes) == 0 && g.VertexCount() == 0 {
			return nil
		}

		return fmt.Errorf("%w: no root", ErrBrokenTree)
	}

	// 1. Tree shape: every node reachable from the root exactly once, child
	//    lists free of duplicates, parent pointers consistent.
	seen := make(map[NodeID]bool, len(t.nodes))
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[v] {
			return fmt.Errorf("%w: node %d reached twice", ErrBrokenTree, v)
		}
		seen[v] = true
		for _, c := range t.nodes[v].children {
			cn, ok := t.nodes[c]
			if !ok {
				return fmt.Errorf("%w: child %d of %d does not exist", ErrBrokenTree, c, v)
			}
			if cn.parent != v {
				return fmt.Errorf("%w: parent pointer of %d does not match", ErrBrokenTree, c)
			}
			stack = append(stack, c)
		}
	}
	if len(seen) != len(t.nodes) {
		return fmt.Errorf("%w: %d nodes unreachable from root", ErrBrokenTree, len(t.nodes)-len(seen))
	}

	// 2. Bags are subsets of the graph's vertex set.
	for id, n := range t.nodes {
		for _, v := range n.bag {
			if !g.ContainsVertex(v) {
				return fmt.Errorf("%w: vertex %d at node %d", ErrBagNotSubset, v, id)
			}
		}
	}

	// 3. Vertex coverage and running intersection via union-find.
	for _, v := range g.Vertices() {
		sets := make(map[NodeID]*disjoint.Element)
		for id, n := range t.nodes {
			if n.bag.Contains(v) {
				sets[id] = disjoint.NewElement()
			}
		}
		if len(sets) == 0 {
			return fmt.Errorf("%w: vertex %d in no bag", ErrNotConnected, v)
		}
		for id, e := range sets {
			if p := t.nodes[id].parent; p != 0 {
				if pe, ok := sets[p]; ok {
					disjoint.Union(e, pe)
				}
			}
		}
		var rep *disjoint.Element
		for _, e := range sets {
			if rep == nil {
				rep = e.Find()
			} else if e.Find() != rep {
				return fmt.Errorf("%w: vertex %d occurs in disconnected bags", ErrNotConnected, v)
			}
		}
	}

	// 4. Every hyperedge fits into some bag.
	for _, e := range g.Edges() {
		covered := false
		for _, n := range t.nodes {
			if e.CoveredBy(n.bag) {
				covered = true
				break
			}
		}
		if !covered {
			return fmt.Errorf("%w: edge %d", ErrEdgeNotCovered, e.ID())
		}
	}

	// 5. Stored induced hyperedges match the bag exactly.
	for id, n := range t.nodes {
		want := inducedEdges(g, n.bag)
		if want.Len() != n.induced.Len() {
			return fmt.Errorf("%w: node %d", ErrInducedMismatch, id)
		}
		for _, e := range want.Edges() {
			if !n.induced.Contains(e.ID()) {
				return fmt.Errorf("%w: node %d misses edge %d", ErrInducedMismatch, id, e.ID())
			}
		}
	}

	return nil
}
