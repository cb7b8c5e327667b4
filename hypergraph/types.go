// Package hypergraph: identifier types, sentinel errors, and the Reader
// contract consumed by the decomposition core.
package hypergraph

import "errors"

// Vertex identifies a graph vertex. Valid vertices are non-zero; 0 is the
// reserved "no vertex" value.
type Vertex int

// EdgeID identifies a hyperedge within one Hypergraph.
type EdgeID int

// Sentinel errors for hypergraph operations.
var (
	// ErrZeroVertex indicates that the reserved vertex id 0 was passed to a mutator.
	ErrZeroVertex = errors.New("hypergraph: vertex id 0 is reserved")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("hypergraph: vertex not found")

	// ErrEmptyEdge indicates an attempt to add a hyperedge without endpoints.
	ErrEmptyEdge = errors.New("hypergraph: hyperedge has no endpoints")

	// ErrParse indicates malformed hypergraph text passed to Parse.
	ErrParse = errors.New("hypergraph: parse error")
)

// Reader is the read-only view of a hypergraph the decomposition core needs:
// iterate vertices and edges, count them, and test vertex membership.
// Hypergraph implements Reader; so may any external graph container.
type Reader interface {
	// Vertices returns all vertex ids in ascending order.
	Vertices() []Vertex

	// Edges returns all hyperedges ordered by id.
	Edges() []Hyperedge

	// VertexCount returns the number of vertices. O(1).
	VertexCount() int

	// EdgeCount returns the number of hyperedges. O(1).
	EdgeCount() int

	// ContainsVertex reports whether v belongs to the graph. O(1).
	ContainsVertex(v Vertex) bool
}
