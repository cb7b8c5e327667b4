// Package decomposition: the copy-on-write induced hyperedge set.
//
// Every node keeps the subset of the input graph's hyperedges whose endpoints
// all lie in its bag. The subset references the shared hyperedge values of the
// graph, so assigning an EdgeSet to another node shares the backing storage;
// the set is only ever replaced wholesale (on SetBag), never edited in place,
// which makes the plain slice handle a copy-on-write structure.

package decomposition

import "github.com/katalvlaran/treedec/hypergraph"

// EdgeSet is a filtered, immutable view over the graph's hyperedges.
// The zero value is the empty set.
type EdgeSet struct {
	edges []hypergraph.Hyperedge
}

// inducedEdges projects the graph's hyperedges onto bag.
// Complexity: O(E · k) for E edges of size ≤ k.
func inducedEdges(g hypergraph.Reader, bag Bag) EdgeSet {
	var out []hypergraph.Hyperedge
	for _, e := range g.Edges() {
		if e.CoveredBy(bag) {
			out = append(out, e)
		}
	}

	return EdgeSet{edges: out}
}

// Len returns the number of hyperedges in the set.
func (s EdgeSet) Len() int { return len(s.edges) }

// Edges returns the hyperedges ordered by id.
// The returned slice must not be modified.
func (s EdgeSet) Edges() []hypergraph.Hyperedge { return s.edges }

// IDs returns the hyperedge ids ordered ascending.
func (s EdgeSet) IDs() []hypergraph.EdgeID {
	out := make([]hypergraph.EdgeID, len(s.edges))
	for i, e := range s.edges {
		out[i] = e.ID()
	}

	return out
}

// Contains reports whether the hyperedge with the given id is in the set.
func (s EdgeSet) Contains(id hypergraph.EdgeID) bool {
	for _, e := range s.edges {
		if e.ID() == id {
			return true
		}
	}

	return false
}
