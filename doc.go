// Package treedec is a manipulation library for tree and path decompositions
// of hypergraphs.
//
// 🚀 What is treedec?
//
//	Given a hypergraph and a decomposition of it — a rooted tree whose nodes
//	carry bags of graph vertices — treedec rewrites the decomposition into
//	normalized, canonical, or otherwise constrained shapes:
//
//	  • Bounded fan-out, bounded introduce/forget width
//	  • Weak, semi- and full normalization
//	  • Empty roots and leaves, identical join-node parents
//	  • Fitness-directed optimization over root choices
//
// ✨ Why choose treedec?
//
//   - Composable          — every rewrite is an Operation; pipelines apply in order
//   - Invariant-safe      — each operation restores the decomposition properties before it returns
//   - Label-aware         — user labels survive node creation, removal, and re-rooting
//   - Pure Go             — no cgo, a handful of small dependencies
//
// Everything is organized under five subpackages:
//
//	hypergraph/     — hyperedges, the input-graph contract, and a text parser
//	decomposition/  — the mutable rooted labeled tree, queries, validation
//	labeling/       — label values, per-name labelings, labeling functions
//	manip/          — the operation framework and all primitive rewrites
//	optimize/       — fitness functions, root selection, optimization
//
// Quick ASCII example:
//
//	      {}                          {}
//	     /                           /
//	  {a,b,c}     normalize →     {c}
//	     \                         /
//	   {a,c,d}                  {b,c}
//	                             ⋮
//
//	every step introduces or forgets exactly one vertex.
//
// Dive into the package docs for the full operation catalogue and the
// optimization strategies.
//
//	go get github.com/katalvlaran/treedec
package treedec
