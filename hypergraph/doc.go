// Package hypergraph provides the input-graph side of treedec: hyperedges,
// an in-memory hypergraph container, and a text parser for the common
// "name(v1,v2,...)" hypergraph benchmark format.
//
// What:
//
//   - Vertex / EdgeID: opaque integer identifiers (vertices are non-zero).
//   - Hyperedge: an unordered multiset of vertices with a stable id. Repeated
//     endpoints (loops) are allowed; a sorted duplicate-free view is kept
//     alongside the insertion-order elements for fast membership tests.
//   - Hypergraph: a mutable container implementing the read-only Reader
//     contract the decomposition core consumes.
//   - Parse: builds a Hypergraph from its textual representation.
//
// Why:
//   - Decomposition manipulation never mutates the input graph; operations
//     only need to iterate vertices and edges and test membership. Reader
//     captures exactly that surface, so alternative graph containers can be
//     plugged in without touching the core.
//
// Errors:
//
//   - ErrZeroVertex      - vertex id 0 passed to a mutator.
//   - ErrVertexNotFound  - operation referenced an unknown vertex.
//   - ErrEmptyEdge       - hyperedge with no endpoints.
//   - ErrParse           - malformed hypergraph text.
package hypergraph
